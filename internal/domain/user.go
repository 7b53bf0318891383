package domain

import "time"

const MinPasswordLen = 8

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	IsStaff      bool      `json:"is_staff"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateUserInput describes a new account. Password may be empty for
// accounts that only receive tokens from an external issuer.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	IsStaff  bool
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID  string
	IsStaff bool
}

func (a Actor) Authenticated() bool {
	return a.UserID != ""
}
