package domain

import (
	"errors"
	"fmt"
)

// Credential and session errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session has expired")
	ErrTokenInvalid       = errors.New("invalid session token")
	ErrTokenMalformed     = errors.New("malformed session token")
)

// ValidationError reports a missing or malformed inbound field. It is always
// raised before any upstream call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Field + " is required"
}

// RequiredField builds the ValidationError used for absent required fields.
func RequiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

// TransportError covers network, timeout and body-decode failures while
// talking to the upstream API.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
