// Package common defines shared constants and sentinel errors used across
// the client and server layers of the acquisitions service. Callers should
// use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Credential lifecycle outcomes.
	ErrDuplicateEmail      = errors.New("user with this email already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrHashingFailure      = errors.New("error hashing password")
	ErrVerificationFailure = errors.New("error comparing password")

	// Auth errors (expired, tampered or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Store or issuer unavailable; the wrapped cause is for logs only.
	ErrInfrastructure = errors.New("internal error")
)
