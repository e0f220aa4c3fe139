package predictions

import (
	"context"
	"fmt"
	"log"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
)

// service implements PredictionService
type service struct {
	repo PredictionRepository
}

// NewService creates a new prediction service
func NewService(repo PredictionRepository) PredictionService {
	return &service{repo: repo}
}

// Create queues a new batch prediction request
func (s *service) Create(ctx context.Context, input CreatePredictionInput) (*models.Prediction, error) {
	params := models.Params(input.Params)
	if params == nil {
		params = make(models.Params)
	}

	prediction := &models.Prediction{
		RequestorUserID: input.RequestorUserID,
		SessionID:       input.SessionID,
		ModelID:         input.ModelID,
		Status:          models.PredictionStatusQueued,
		Params:          params,
	}

	if err := s.repo.Create(ctx, prediction); err != nil {
		return nil, fmt.Errorf("creating prediction: %w", err)
	}

	log.Printf("[DEBUG] Queued prediction %d (uuid %s)", prediction.ID, prediction.UUID)

	return prediction, nil
}

// MarkComplete transitions a queued prediction to succeeded or failed.
// A non-empty error message wins: the row is marked failed and the success
// fields are left untouched. Otherwise output text is required and the row
// is marked succeeded.
func (s *service) MarkComplete(ctx context.Context, id uint, input CompletePredictionInput) (models.PredictionStatus, error) {
	if id == 0 {
		return "", ErrInvalidPredictionID
	}

	status := models.PredictionStatusSucceeded
	if input.ErrorMessage != "" {
		status = models.PredictionStatusFailed
	} else {
		if input.OutputText == "" {
			return "", ErrMissingOutputText
		}
		if input.Confidence != nil && (*input.Confidence < 0.0 || *input.Confidence > 1.0) {
			return "", ErrInvalidConfidence
		}
	}

	if err := s.repo.MarkComplete(ctx, id, status, input); err != nil {
		return "", err
	}

	log.Printf("[DEBUG] Prediction %d completed with status %s", id, status)

	return status, nil
}

// List returns predictions newest first, optionally filtered by session
func (s *service) List(ctx context.Context, sessionID *string, limit int) ([]models.Prediction, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.List(ctx, sessionID, limit)
}

// Get returns one prediction by ID
func (s *service) Get(ctx context.Context, id uint) (*models.Prediction, error) {
	if id == 0 {
		return nil, ErrInvalidPredictionID
	}
	return s.repo.GetByID(ctx, id)
}

// Update is unsupported for predictions
func (s *service) Update(ctx context.Context, id uint) error {
	return ErrNotImplemented
}

// Delete removes a prediction by ID
func (s *service) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidPredictionID
	}
	return s.repo.Delete(ctx, id)
}
