// internal/model/error.go
package model

import "errors"

// Application-specific errors.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrConflict       = errors.New("resource conflict")
	// ErrAIUnavailable marks a best-effort external AI/TTS failure so the
	// caller can show "try again" without treating it as a server fault.
	ErrAIUnavailable = errors.New("ai service unavailable")
)
