package gestures

import "errors"

var (
	// ErrGestureNotFound is returned when a gesture is not found
	ErrGestureNotFound = errors.New("gesture not found")

	// ErrInvalidGestureID is returned when a gesture ID is invalid
	ErrInvalidGestureID = errors.New("invalid gesture ID")

	// ErrMissingLandmarks is returned when a submission has no landmarks
	ErrMissingLandmarks = errors.New("landmarks are required")

	// ErrInvalidConfidence is returned when confidence is outside [0, 1]
	ErrInvalidConfidence = errors.New("confidence must be between 0.0 and 1.0")

	// ErrNotImplemented is returned for the unsupported update operation
	ErrNotImplemented = errors.New("gesture update is not implemented")
)
