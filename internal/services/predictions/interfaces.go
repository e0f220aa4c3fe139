package predictions

import (
	"context"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
)

// DefaultListLimit caps list queries when no limit is given
const DefaultListLimit = 100

// CreatePredictionInput carries the fields accepted when queueing a batch request
type CreatePredictionInput struct {
	RequestorUserID *string
	SessionID       *string
	ModelID         *uint
	Params          map[string]interface{}
}

// CompletePredictionInput carries the completion report for a batch request.
// A non-empty ErrorMessage marks the prediction failed and the success fields
// are ignored; otherwise OutputText is required and the prediction succeeds.
type CompletePredictionInput struct {
	OutputText   string
	Confidence   *float64
	LatencyMs    *int
	ErrorMessage string
}

// PredictionService defines the business logic interface for batch predictions
type PredictionService interface {
	// Create queues a new batch prediction request
	Create(ctx context.Context, input CreatePredictionInput) (*models.Prediction, error)

	// MarkComplete transitions a queued prediction to succeeded or failed.
	// The transition fires at most once; completing an already-terminal row
	// returns ErrAlreadyCompleted.
	MarkComplete(ctx context.Context, id uint, input CompletePredictionInput) (models.PredictionStatus, error)

	// List returns predictions newest first, optionally filtered by session
	List(ctx context.Context, sessionID *string, limit int) ([]models.Prediction, error)

	// Get returns one prediction by ID
	Get(ctx context.Context, id uint) (*models.Prediction, error)

	// Update is unsupported and always returns ErrNotImplemented
	Update(ctx context.Context, id uint) error

	// Delete removes a prediction by ID
	Delete(ctx context.Context, id uint) error
}

// PredictionRepository defines the interface for prediction persistence
type PredictionRepository interface {
	Create(ctx context.Context, prediction *models.Prediction) error
	MarkComplete(ctx context.Context, id uint, status models.PredictionStatus, input CompletePredictionInput) error
	List(ctx context.Context, sessionID *string, limit int) ([]models.Prediction, error)
	GetByID(ctx context.Context, id uint) (*models.Prediction, error)
	Delete(ctx context.Context, id uint) error
}
