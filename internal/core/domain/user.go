package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a directory entry. IDs are assigned by the store and never reused;
// email is unique across all users.
type User struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
