// Package common defines shared sentinel errors used across StudyTrack
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors.
	ErrMissingField       = errors.New("missing field")
	ErrInvalidMinutes     = errors.New("invalid minutes")
	ErrUnapprovedSubject  = errors.New("unapproved subject")
	ErrUnapprovedCategory = errors.New("unapproved category")

	// Credential store errors.
	ErrInvalidUsername    = errors.New("invalid username")
	ErrDuplicateUser      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Repository-level errors.
	ErrNotFound        = errors.New("not found")
	ErrMalformedRecord = errors.New("malformed record")

	// Session manager errors.
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrOutOfRange       = errors.New("out of range")
	ErrSessionNotFound  = errors.New("session not found")
)
