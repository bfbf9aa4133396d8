package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amurpo/userhub/internal/models"
)

// MemoryStore is an in-process user store honoring the same contract as
// MongoStore, including the uniqueness constraint. Tests use it in place of a
// live database.
type MemoryStore struct {
	mu    sync.Mutex
	users map[string]*models.User
	order []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]*models.User)}
}

func (s *MemoryStore) List(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.order))
	// Newest first, matching the Mongo sort.
	for i := len(s.order) - 1; i >= 0; i-- {
		users = append(users, *s.users[s.order[i]])
	}
	return users, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.order {
		u := s.users[id]
		if u.Username == username || u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) Insert(ctx context.Context, username, email, passwordHash string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username || u.Email == email {
			return "", ErrDuplicate
		}
	}
	id := uuid.NewString()
	s.users[id] = &models.User{
		ID:        id,
		Username:  username,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	s.order = append(s.order, id)
	return id, nil
}

func (s *MemoryStore) UpdateProfile(ctx context.Context, id string, p ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	for oid, other := range s.users {
		if oid == id {
			continue
		}
		if (p.Username != "" && other.Username == p.Username) ||
			(p.Email != "" && other.Email == p.Email) {
			return ErrDuplicate
		}
	}
	if p.Username != "" {
		u.Username = p.Username
	}
	if p.Email != "" {
		u.Email = p.Email
	}
	return nil
}

func (s *MemoryStore) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		u.Password = passwordHash
	}
	return nil
}
