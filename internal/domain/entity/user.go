// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the bookkeeping system.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User entity.
func NewUser(username, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Profile holds the personal details attached to a user. A user owns exactly
// one profile; it is removed together with the user.
type Profile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Avatar    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProfile creates a new Profile entity for the given user.
func NewProfile(userID uuid.UUID, firstName, lastName string, avatar *string) *Profile {
	now := time.Now().UTC()
	return &Profile{
		ID:        uuid.New(),
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Avatar:    avatar,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
