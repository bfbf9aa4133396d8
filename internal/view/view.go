package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/amurpo/userhub/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer renders the HTML pages from embedded templates.
type Renderer struct {
	tpl *template.Template
}

func New() (*Renderer, error) {
	tpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

// Index renders the user list.
func (r *Renderer) Index(w io.Writer, users []models.User) error {
	return r.tpl.ExecuteTemplate(w, "index.html", users)
}

// CreateForm renders the empty user-creation form.
func (r *Renderer) CreateForm(w io.Writer) error {
	return r.tpl.ExecuteTemplate(w, "create_user.html", nil)
}

// UpdateForm renders the edit form prefilled with the user's current values.
func (r *Renderer) UpdateForm(w io.Writer, user *models.User) error {
	return r.tpl.ExecuteTemplate(w, "update_user.html", user)
}

// NotFound renders the page shown when an edit link points at no user.
func (r *Renderer) NotFound(w io.Writer) error {
	return r.tpl.ExecuteTemplate(w, "user_not_found.html", nil)
}
