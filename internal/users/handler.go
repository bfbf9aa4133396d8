package users

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/amurpo/userhub/internal/models"
	"github.com/amurpo/userhub/internal/store"
)

// duplicateMessage is the body returned when a write collides with an
// existing username or email. Kept stable: clients match on it.
const duplicateMessage = "Username or email already exists"

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Store defines the interface for user persistence.
type Store interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
	Insert(ctx context.Context, username, email, passwordHash string) (string, error)
	UpdateProfile(ctx context.Context, id string, p store.ProfileUpdate) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

// Renderer defines the interface for the HTML pages the handlers serve.
type Renderer interface {
	Index(w io.Writer, users []models.User) error
	CreateForm(w io.Writer) error
	UpdateForm(w io.Writer, user *models.User) error
	NotFound(w io.Writer) error
}

// Handler holds the user-management HTTP handlers.
type Handler struct {
	store  Store
	hasher PasswordHasher
	views  Renderer
	log    zerolog.Logger
}

func NewHandler(s Store, hasher PasswordHasher, views Renderer, log zerolog.Logger) *Handler {
	return &Handler{store: s, hasher: hasher, views: views, log: log}
}

// Routes returns the router for the whole HTTP surface.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/create-user", h.CreateForm)
	r.Post("/create-user", h.Create)
	r.Get("/update/{id}", h.UpdateForm)
	r.Post("/update/{id}", h.Update)
	r.Post("/update-password", h.UpdatePassword)
	return r
}

// Index lists all users.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.List(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list users")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list users"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.Index(w, users); err != nil {
		h.log.Error().Err(err).Msg("render index")
	}
}

// CreateForm serves the empty creation form.
func (h *Handler) CreateForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.CreateForm(w); err != nil {
		h.log.Error().Err(err).Msg("render create form")
	}
}

// Create handles the creation form submission.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form data"})
		return
	}
	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	if username == "" || email == "" || password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "username, email, and password are required"})
		return
	}

	// Pre-check keeps the friendly message; the unique indexes catch the
	// race loser on insert.
	if _, err := h.store.FindByUsernameOrEmail(r.Context(), username, email); err == nil {
		writeJSON(w, http.StatusOK, map[string]string{"error": duplicateMessage})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		h.log.Error().Err(err).Msg("duplicate check")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create user"})
		return
	}

	hashed, err := h.hasher.Hash(password)
	if err != nil {
		h.log.Error().Err(err).Msg("hash password")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create user"})
		return
	}

	if _, err := h.store.Insert(r.Context(), username, email, hashed); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			writeJSON(w, http.StatusOK, map[string]string{"error": duplicateMessage})
			return
		}
		h.log.Error().Err(err).Msg("insert user")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create user"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// UpdateForm serves the edit form prefilled with the user's current values.
func (h *Handler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	user, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			if err := h.views.NotFound(w); err != nil {
				h.log.Error().Err(err).Msg("render not found")
			}
			return
		}
		h.log.Error().Err(err).Str("id", id).Msg("get user")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load user"})
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.views.UpdateForm(w, user); err != nil {
		h.log.Error().Err(err).Msg("render update form")
	}
}

// Update handles the edit form submission.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form data"})
		return
	}
	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	if username == "" || email == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "username and email are required"})
		return
	}

	err := h.store.UpdateProfile(r.Context(), id, store.ProfileUpdate{Username: username, Email: email})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			writeJSON(w, http.StatusOK, map[string]string{"error": duplicateMessage})
			return
		}
		h.log.Error().Err(err).Str("id", id).Msg("update profile")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update user"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// UpdatePassword handles the password-change form submission.
func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid form data"})
		return
	}
	id := r.PostFormValue("id")
	newPassword := r.PostFormValue("new_password")
	if id == "" || newPassword == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "id and new_password are required"})
		return
	}

	hashed, err := h.hasher.Hash(newPassword)
	if err != nil {
		h.log.Error().Err(err).Msg("hash password")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update password"})
		return
	}

	if err := h.store.UpdatePassword(r.Context(), id, hashed); err != nil {
		h.log.Error().Err(err).Str("id", id).Msg("update password")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update password"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
