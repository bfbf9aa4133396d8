package users

import "golang.org/x/crypto/bcrypt"

// PasswordHasher produces a one-way salted digest for credential storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// BcryptHasher hashes passwords with bcrypt. Zero Cost means
// bcrypt.DefaultCost; tests lower it.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
