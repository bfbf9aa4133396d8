package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	hashed, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "secret", hashed)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("secret")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hashed), []byte("wrong")))
}

func TestBcryptHasherSalted(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	a, err := h.Hash("secret")
	require.NoError(t, err)
	b, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "hashes must be salted")
}
