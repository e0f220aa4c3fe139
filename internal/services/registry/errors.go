package registry

import "errors"

var (
	// ErrModelNotFound is returned when a model is not found
	ErrModelNotFound = errors.New("model not found")

	// ErrInvalidModelID is returned when a model ID is invalid
	ErrInvalidModelID = errors.New("invalid model ID")

	// ErrMissingRequiredField is returned when a registration is incomplete
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrNotImplemented is returned for the unsupported update operation
	ErrNotImplemented = errors.New("model update is not implemented")
)
