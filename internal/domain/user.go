package domain

import (
	"context"
	"time"
)

// User represents an account known to the service. Credentials are
// issued by an external token service; this store holds identity only.
type User struct {
	ID        string
	Username  string
	Email     string
	IsStaff   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new User instance
func NewUser(username, email string) *User {
	now := time.Now()
	return &User{
		Username:  username,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Username == "" {
		return FieldErrors(NewMissingFieldError("username"))
	}
	return nil
}

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	UserIDsExist(ctx context.Context, userIDs []string) (bool, error)
}
