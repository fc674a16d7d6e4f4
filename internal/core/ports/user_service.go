package ports

import (
	"context"

	"github.com/shopmesh/platform/internal/core/domain"
)

// UserStats aggregates the directory for the stats endpoint.
type UserStats struct {
	Total  int
	ByRole map[string]int
	// RecentUsers holds the last inserted records, most recent first.
	RecentUsers []domain.User
}

// UserService is the application boundary consumed by the HTTP handlers.
type UserService interface {
	ListUsers(ctx context.Context, filter ListUsersFilter) ([]domain.User, error)
	GetUser(ctx context.Context, id int) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id int, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id int) (*domain.User, error)
	UserStats(ctx context.Context) (*UserStats, error)
	UserCount(ctx context.Context) (int, error)
}
