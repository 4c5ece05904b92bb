package entity

import (
	"errors"
	"strings"
	"time"
)

var ErrEmailRequired = errors.New("email is required")

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in Password field.
type User struct {
	ID          string
	Email       string
	Password    string
	Name        string
	IsStaff     bool
	IsSuperuser bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NormalizeEmail lowercases the domain part of an email address while
// keeping the local part as provided (Test2@Example.com -> Test2@example.com).
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// NewUser builds a regular user with a normalized email.
// The password is expected to be hashed already by the caller.
func NewUser(email, passwordHash, name string) (*User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}
	return &User{
		Email:    NormalizeEmail(email),
		Password: passwordHash,
		Name:     name,
	}, nil
}

// NewSuperuser builds a user with staff and superuser privileges.
func NewSuperuser(email, passwordHash, name string) (*User, error) {
	u, err := NewUser(email, passwordHash, name)
	if err != nil {
		return nil, err
	}
	u.IsStaff = true
	u.IsSuperuser = true
	return u, nil
}
