package gestures

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
)

// service implements GestureService
type service struct {
	repo GestureRepository
	now  func() time.Time
}

// NewService creates a new gesture service
func NewService(repo GestureRepository) GestureService {
	return &service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a new landmarks-only frame.
// received_at is stamped with the service clock (UTC).
func (s *service) Create(ctx context.Context, input CreateGestureInput) (*models.Gesture, error) {
	if len(input.Landmarks) == 0 {
		return nil, ErrMissingLandmarks
	}

	source := input.Source
	if source == "" {
		source = models.GestureSourceWeb
	}

	gesture := &models.Gesture{
		SessionID:   input.SessionID,
		UserID:      input.UserID,
		Landmarks:   models.Landmarks(input.Landmarks),
		FrameWidth:  input.FrameWidth,
		FrameHeight: input.FrameHeight,
		Source:      source,
		ReceivedAt:  s.now(),
	}

	if err := s.repo.Create(ctx, gesture); err != nil {
		return nil, fmt.Errorf("creating gesture: %w", err)
	}

	log.Printf("[DEBUG] Stored gesture %d (%d landmarks, source %s)", gesture.ID, len(gesture.Landmarks), gesture.Source)

	return gesture, nil
}

// AttachInference updates a gesture row in place with an inference result
func (s *service) AttachInference(ctx context.Context, gestureID uint, input AttachInferenceInput) error {
	if gestureID == 0 {
		return ErrInvalidGestureID
	}
	if input.Confidence < 0.0 || input.Confidence > 1.0 {
		return ErrInvalidConfidence
	}

	if err := s.repo.AttachInference(ctx, gestureID, input); err != nil {
		return err
	}

	log.Printf("[DEBUG] Attached inference to gesture %d (label %s, confidence %.3f)",
		gestureID, input.PredictedLabel, input.Confidence)

	return nil
}

// List returns gestures newest first, optionally filtered by user
func (s *service) List(ctx context.Context, userID *string, limit int) ([]models.Gesture, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	return s.repo.List(ctx, userID, limit)
}

// Get returns one gesture by ID
func (s *service) Get(ctx context.Context, id uint) (*models.Gesture, error) {
	if id == 0 {
		return nil, ErrInvalidGestureID
	}
	return s.repo.GetByID(ctx, id)
}

// Update is unsupported for gestures
func (s *service) Update(ctx context.Context, id uint) error {
	return ErrNotImplemented
}

// Delete removes a gesture by ID
func (s *service) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidGestureID
	}
	return s.repo.Delete(ctx, id)
}
