package core

import "github.com/google/uuid"

// Credentials is the signup/login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserRecord is what the repository stores per email. Password holds the
// scheme-encoded value.
type UserRecord struct {
	ID       uuid.UUID
	Email    string
	Password string
}
