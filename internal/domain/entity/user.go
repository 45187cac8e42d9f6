// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a registered account.
// Email and Username are both unique login identifiers; PasswordHash stores
// the opaque encoded credential produced by the password hasher and is never
// exposed through the API.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's email address, unique across accounts.
	Username     string    // The user's chosen handle, unique across accounts.
	FullName     string    // The user's display name.
	PasswordHash string    // Encoded credential hash; opaque to everything but the hasher.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// PublicUser is the API-safe projection of a User: everything except the
// credential hash.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Public returns the API-safe projection of the user.
func (u *User) Public() *PublicUser {
	if u == nil {
		return nil
	}

	return &PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}
