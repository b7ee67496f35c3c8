package core

import (
	"errors"
	"net/http"
)

var (
	ErrMissingField       = errors.New("missing email or password")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Returned by repositories.
var (
	ErrNotFound = errors.New("user not found")
	ErrExists   = errors.New("user exists")
)

type failure struct {
	status  int
	message string
}

var failures = []struct {
	err error
	failure
}{
	{ErrMissingField, failure{http.StatusBadRequest, "Missing email or password."}},
	{ErrDuplicateUser, failure{http.StatusConflict, "User already exists."}},
	{ErrInvalidCredentials, failure{http.StatusUnauthorized, "Invalid email or password."}},
}

var internalFailure = failure{http.StatusInternalServerError, "Internal server error."}

// failureFor maps err to its response status and public message.
func failureFor(err error) failure {
	for _, f := range failures {
		if errors.Is(err, f.err) {
			return f.failure
		}
	}
	return internalFailure
}
