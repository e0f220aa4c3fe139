package gestures

import (
	"context"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
)

// DefaultListLimit caps list queries when no limit is given
const DefaultListLimit = 100

// CreateGestureInput carries the fields accepted when submitting a frame
type CreateGestureInput struct {
	Landmarks   [][]float64
	SessionID   *string
	UserID      *string
	FrameWidth  *int
	FrameHeight *int
	Source      string
}

// AttachInferenceInput carries an externally computed inference result
type AttachInferenceInput struct {
	ModelID          uint
	PredictedLabel   string
	Confidence       float64
	Probs            map[string]float64
	ProcessingTimeMs *int
}

// GestureService defines the business logic interface for gesture operations
type GestureService interface {
	// Create stores a new landmarks-only frame and returns it with the assigned ID
	Create(ctx context.Context, input CreateGestureInput) (*models.Gesture, error)

	// AttachInference updates a gesture row in place with an inference result
	AttachInference(ctx context.Context, gestureID uint, input AttachInferenceInput) error

	// List returns gestures newest first, optionally filtered by user
	List(ctx context.Context, userID *string, limit int) ([]models.Gesture, error)

	// Get returns one gesture by ID
	Get(ctx context.Context, id uint) (*models.Gesture, error)

	// Update is unsupported and always returns ErrNotImplemented
	Update(ctx context.Context, id uint) error

	// Delete removes a gesture by ID
	Delete(ctx context.Context, id uint) error
}

// GestureRepository defines the interface for gesture persistence
type GestureRepository interface {
	Create(ctx context.Context, gesture *models.Gesture) error
	AttachInference(ctx context.Context, gestureID uint, input AttachInferenceInput) error
	List(ctx context.Context, userID *string, limit int) ([]models.Gesture, error)
	GetByID(ctx context.Context, id uint) (*models.Gesture, error)
	Delete(ctx context.Context, id uint) error
}
