// internal/models/user.go
package models

import "time"

// Role values stored on a user record.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether r is a role the API accepts.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

// User is an account record. PasswordHash never leaves the store layer;
// handlers return SafeUser instead.
type User struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// SafeUser is the API view of a user, with credentials stripped.
type SafeUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Safe returns the credential-free view of the user.
func (u *User) Safe() SafeUser {
	return SafeUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// IsAdmin reports whether the user may access admin routes.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
