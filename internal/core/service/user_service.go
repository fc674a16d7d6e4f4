package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shopmesh/platform/internal/api/metrics"
	"github.com/shopmesh/platform/internal/core/domain"
	"github.com/shopmesh/platform/internal/core/ports"
)

// recentUserWindow is how many of the latest inserts the stats endpoint reports.
const recentUserWindow = 5

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) ListUsers(ctx context.Context, filter ports.ListUsersFilter) ([]domain.User, error) {
	return s.repo.List(ctx, filter)
}

func (s *UserService) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	user, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	metrics.RecordMutationsTotal.WithLabelValues("user", "create").Inc()
	s.logger.Info().Int("user_id", user.ID).Str("role", user.Role).Msg("user created")
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id int, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	metrics.RecordMutationsTotal.WithLabelValues("user", "update").Inc()
	s.logger.Info().Int("user_id", user.ID).Msg("user updated")
	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	metrics.RecordMutationsTotal.WithLabelValues("user", "delete").Inc()
	s.logger.Info().Int("user_id", user.ID).Msg("user deleted")
	return user, nil
}

// UserStats summarises the directory: totals, per-role counts, and the last
// few inserts in most-recent-first order.
func (s *UserService) UserStats(ctx context.Context) (*ports.UserStats, error) {
	users, err := s.repo.List(ctx, ports.ListUsersFilter{})
	if err != nil {
		return nil, err
	}

	byRole := map[string]int{
		domain.RoleAdmin: 0,
		domain.RoleUser:  0,
	}
	for _, u := range users {
		byRole[u.Role]++
	}

	start := len(users) - recentUserWindow
	if start < 0 {
		start = 0
	}
	recent := make([]domain.User, 0, recentUserWindow)
	for i := len(users) - 1; i >= start; i-- {
		recent = append(recent, users[i])
	}

	return &ports.UserStats{
		Total:       len(users),
		ByRole:      byRole,
		RecentUsers: recent,
	}, nil
}

func (s *UserService) UserCount(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
