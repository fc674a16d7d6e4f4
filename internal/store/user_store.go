// Package store holds the in-memory entity stores backing the resource
// services. Each store owns its records exclusively: every read hands out a
// copy and every write goes through the store's lock, so no caller can
// observe or cause a mutation through a retained reference.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/shopmesh/platform/internal/core/domain"
	"github.com/shopmesh/platform/internal/core/ports"
)

// UserStore is an insertion-ordered in-memory user collection with
// monotonically increasing ID assignment. IDs freed by Delete are never
// reused.
type UserStore struct {
	mu     sync.RWMutex
	byID   map[int]*domain.User
	order  []int
	nextID int
}

// NewUserStore builds a store preloaded with the seed directory. The ID
// sequence continues one past the last seed record.
func NewUserStore() *UserStore {
	s := &UserStore{
		byID:   make(map[int]*domain.User),
		nextID: 1,
	}
	now := time.Now().UTC()
	for _, u := range []domain.User{
		{Name: "Alice Johnson", Email: "alice@example.com", Role: domain.RoleAdmin},
		{Name: "Bob Smith", Email: "bob@example.com", Role: domain.RoleUser},
		{Name: "Carol Davis", Email: "carol@example.com", Role: domain.RoleUser},
	} {
		u.ID = s.nextID
		u.CreatedAt = now
		s.byID[u.ID] = cloneUser(&u)
		s.order = append(s.order, u.ID)
		s.nextID++
	}
	return s
}

// List returns all users in insertion order, narrowed by filter.
func (s *UserStore) List(_ context.Context, filter ports.ListUsersFilter) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]domain.User, 0, len(s.order))
	for _, id := range s.order {
		u := s.byID[id]
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		users = append(users, *cloneUser(u))
	}
	if filter.Limit > 0 && len(users) > filter.Limit {
		users = users[:filter.Limit]
	}
	return users, nil
}

func (s *UserStore) FindByID(_ context.Context, id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

// Create inserts a new user, failing when the email is already taken by any
// existing record.
func (s *UserStore) Create(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(input.Email, 0) {
		return nil, domain.ErrEmailTaken
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	u := &domain.User{
		ID:        s.nextID,
		Name:      input.Name,
		Email:     input.Email,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
	s.byID[u.ID] = u
	s.order = append(s.order, u.ID)
	s.nextID++

	return cloneUser(u), nil
}

// Update overwrites only the supplied fields and stamps updatedAt. Changing
// the email to one held by a different user fails with ErrEmailTaken.
func (s *UserStore) Update(_ context.Context, id int, input ports.UpdateUserInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if input.Email != nil && s.emailTaken(*input.Email, id) {
		return nil, domain.ErrEmailTaken
	}

	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Email != nil {
		u.Email = *input.Email
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	now := time.Now().UTC()
	u.UpdatedAt = &now

	return cloneUser(u), nil
}

// Delete removes and returns the record. The freed ID is never reassigned.
func (s *UserStore) Delete(_ context.Context, id int) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return cloneUser(u), nil
}

func (s *UserStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}

// emailTaken reports whether email belongs to a user other than exceptID.
// Callers must hold the lock.
func (s *UserStore) emailTaken(email string, exceptID int) bool {
	for _, u := range s.byID {
		if u.ID != exceptID && u.Email == email {
			return true
		}
	}
	return false
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	if u.UpdatedAt != nil {
		t := *u.UpdatedAt
		c.UpdatedAt = &t
	}
	return &c
}
