package ports

import (
	"context"

	"github.com/shopmesh/platform/internal/core/domain"
)

// ListUsersFilter narrows a user listing.
type ListUsersFilter struct {
	// Role filters on exact role match when non-empty.
	Role string
	// Limit truncates the result to the first N records when positive.
	Limit int
}

// CreateUserInput carries the fields of a new user. Role defaults to
// domain.RoleUser when empty.
type CreateUserInput struct {
	Name  string
	Email string
	Role  string
}

// UpdateUserInput carries a partial update. Nil fields are left untouched.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Role  *string
}

// UserRepository is the storage boundary for the user directory.
type UserRepository interface {
	List(ctx context.Context, filter ListUsersFilter) ([]domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id int) (*domain.User, error)
	Count(ctx context.Context) (int, error)
}
