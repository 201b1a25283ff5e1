// Package common defines shared sentinel errors and small helpers used across
// the storefront packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Service-level errors.
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrorValidation = errors.New("validation error")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
