package predictions

import "errors"

var (
	// ErrPredictionNotFound is returned when a prediction is not found
	ErrPredictionNotFound = errors.New("prediction not found")

	// ErrInvalidPredictionID is returned when a prediction ID is invalid
	ErrInvalidPredictionID = errors.New("invalid prediction ID")

	// ErrAlreadyCompleted is returned when marking a prediction complete
	// that has already reached a terminal state
	ErrAlreadyCompleted = errors.New("prediction already completed")

	// ErrMissingOutputText is returned when completing without output or error
	ErrMissingOutputText = errors.New("output_text is required for a successful completion")

	// ErrInvalidConfidence is returned when confidence is outside [0, 1]
	ErrInvalidConfidence = errors.New("confidence must be between 0.0 and 1.0")

	// ErrNotImplemented is returned for the unsupported update operation
	ErrNotImplemented = errors.New("prediction update is not implemented")
)
