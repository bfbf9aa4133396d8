package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amurpo/userhub/internal/models"
)

func TestIndex(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Index(&buf, []models.User{
		{ID: "1", Username: "alice", Email: "a@x.com"},
		{ID: "2", Username: "bob", Email: "b@x.com"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "alice")
	assert.Contains(t, buf.String(), "/update/2")
}

func TestIndexEmpty(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Index(&buf, nil))
	assert.Contains(t, buf.String(), "No users yet")
}

func TestCreateForm(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.CreateForm(&buf))
	assert.Contains(t, buf.String(), `name="username"`)
	assert.Contains(t, buf.String(), `name="email"`)
	assert.Contains(t, buf.String(), `name="password"`)
}

func TestUpdateForm(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	u := &models.User{ID: "abc", Username: "alice", Email: "a@x.com"}
	require.NoError(t, r.UpdateForm(&buf, u))
	assert.Contains(t, buf.String(), `action="/update/abc"`)
	assert.Contains(t, buf.String(), `value="alice"`)
	assert.Contains(t, buf.String(), `name="new_password"`)
}

func TestUpdateFormEscapesUserData(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	u := &models.User{ID: "abc", Username: `<script>alert(1)</script>`, Email: "a@x.com"}
	require.NoError(t, r.UpdateForm(&buf, u))
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}

func TestNotFound(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.NotFound(&buf))
	assert.Contains(t, buf.String(), "User not found")
}
