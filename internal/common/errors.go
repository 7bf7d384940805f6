// Package common defines shared sentinel errors used across the service
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Request validation errors (bad body, missing file).
	ErrValidation       = errors.New("validation error")
	ErrUnsupportedMedia = errors.New("unsupported media type")

	// Downstream failures. Fatal to the current request, never retried.
	ErrStorage    = errors.New("storage error")
	ErrAIProvider = errors.New("ai provider error")

	// Service-level errors (generic/internal flow control).
	ErrInternal = errors.New("internal error")
)
