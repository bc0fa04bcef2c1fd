// Package common defines shared constants and sentinel errors used across
// the libracli client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrNoRefreshToken   = errors.New("no refresh token")
	ErrNotAuthenticated = errors.New("not authenticated")

	// Resource errors.
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")

	// Generic/internal flow control.
	ErrInternal = errors.New("internal error")
)
