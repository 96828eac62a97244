package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an account record.  PasswordHash holds a bcrypt hash and must
// never be serialized into API responses.
type User struct {
	ID           string    // users.id (UUID)
	Email        string    // users.email (unique)
	FirstName    string    // users.first_name
	LastName     string    // users.last_name
	PasswordHash string    // users.password_hash (bcrypt)
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// NewUser stamps identity and audit timestamps on a fresh user.  The
// password must already be hashed by the caller.
func NewUser(email, firstName, lastName, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// FullName joins the user's first and last names.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
