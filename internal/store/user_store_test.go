package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shopmesh/platform/internal/core/domain"
	"github.com/shopmesh/platform/internal/core/ports"
)

func strptr(s string) *string { return &s }

func TestUserStore_Seed(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	users, err := s.List(ctx, ports.ListUsersFilter{})
	require.NoError(t, err)
	require.Len(t, users, 3)
	require.Equal(t, 1, users[0].ID)
	require.Equal(t, domain.RoleAdmin, users[0].Role)
	require.Nil(t, users[0].UpdatedAt)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestUserStore_Create_AssignsSequentialIDs(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	u, err := s.Create(ctx, ports.CreateUserInput{Name: "Dave", Email: "dave@example.com"})
	require.NoError(t, err)
	require.Equal(t, 4, u.ID)
	require.Equal(t, domain.RoleUser, u.Role, "role defaults to user")
	require.False(t, u.CreatedAt.IsZero())
}

func TestUserStore_Create_NeverReusesIDs(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	u, err := s.Create(ctx, ports.CreateUserInput{Name: "Dave", Email: "dave@example.com"})
	require.NoError(t, err)
	require.Equal(t, 4, u.ID)

	_, err = s.Delete(ctx, u.ID)
	require.NoError(t, err)

	next, err := s.Create(ctx, ports.CreateUserInput{Name: "Erin", Email: "erin@example.com"})
	require.NoError(t, err)
	require.Equal(t, 5, next.ID, "freed IDs must not be reassigned")
}

func TestUserStore_Create_DuplicateEmail(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	_, err := s.Create(ctx, ports.CreateUserInput{Name: "Copycat", Email: "alice@example.com"})
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count, "failed create must not mutate the store")
}

func TestUserStore_Update_PartialFields(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	before, err := s.FindByID(ctx, 2)
	require.NoError(t, err)

	updated, err := s.Update(ctx, 2, ports.UpdateUserInput{Role: strptr("admin")})
	require.NoError(t, err)
	require.Equal(t, "admin", updated.Role)
	require.Equal(t, before.Name, updated.Name)
	require.Equal(t, before.Email, updated.Email)
	require.NotNil(t, updated.UpdatedAt)

	// Re-fetch to confirm the mutation landed in the store.
	after, err := s.FindByID(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "admin", after.Role)
}

func TestUserStore_Update_EmailConflict(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	_, err := s.Update(ctx, 2, ports.UpdateUserInput{Email: strptr("alice@example.com")})
	require.ErrorIs(t, err, domain.ErrEmailTaken)

	// Keeping one's own email is not a conflict.
	_, err = s.Update(ctx, 2, ports.UpdateUserInput{Email: strptr("bob@example.com")})
	require.NoError(t, err)
}

func TestUserStore_Update_NotFound(t *testing.T) {
	s := NewUserStore()

	_, err := s.Update(context.Background(), 999, ports.UpdateUserInput{Role: strptr("admin")})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserStore_Delete(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	internal := s.byID[3]
	removed, err := s.Delete(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, "Carol Davis", removed.Name)
	require.NotSame(t, internal, removed, "callers must not reach store-owned records")

	_, err = s.FindByID(ctx, 3)
	require.ErrorIs(t, err, domain.ErrUserNotFound)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	_, err = s.Delete(ctx, 3)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserStore_List_RoleFilterAndLimit(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	admins, err := s.List(ctx, ports.ListUsersFilter{Role: domain.RoleAdmin})
	require.NoError(t, err)
	require.Len(t, admins, 1)
	require.Equal(t, "Alice Johnson", admins[0].Name)

	first, err := s.List(ctx, ports.ListUsersFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Equal(t, 1, first[0].ID)
	require.Equal(t, 2, first[1].ID)

	all, err := s.List(ctx, ports.ListUsersFilter{Limit: 0})
	require.NoError(t, err)
	require.Len(t, all, 3, "non-positive limit means no limit")
}

func TestUserStore_List_ReturnsCopies(t *testing.T) {
	s := NewUserStore()
	ctx := context.Background()

	users, err := s.List(ctx, ports.ListUsersFilter{})
	require.NoError(t, err)
	users[0].Name = "mutated"

	fresh, err := s.FindByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Alice Johnson", fresh.Name, "callers must not reach store-owned records")
}
