package handler

import "github.com/shopmesh/platform/internal/core/domain"

// --- Request types ---

type createUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"`
}

// updateUserRequest distinguishes "absent" from "empty" via pointer fields:
// a nil pointer means the field was not supplied and keeps its prior value.
type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// --- Response types ---

type listUsersResponse struct {
	Count int           `json:"count"`
	Users []domain.User `json:"users"`
}

// userNotFoundResponse echoes the requested ID so clients can correlate
// failed lookups.
type userNotFoundResponse struct {
	Error  string `json:"error"`
	UserID int    `json:"userId"`
}

type userStatsResponse struct {
	Total       int            `json:"total"`
	ByRole      map[string]int `json:"byRole"`
	RecentUsers []domain.User  `json:"recentUsers"`
}
