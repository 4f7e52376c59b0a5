package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a database or config document failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a file, module, or model was not found.
	ErrNotFound = errors.New("not found")

	// ErrUnknownModule indicates a module name absent from the metadata database.
	ErrUnknownModule = errors.New("unknown module")

	// ErrUsage indicates the command was invoked incorrectly.
	ErrUsage = errors.New("usage error")
)
