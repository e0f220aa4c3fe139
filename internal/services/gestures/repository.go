package gestures

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
)

// repository implements GestureRepository
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new gesture repository
func NewRepository(db *gorm.DB) GestureRepository {
	return &repository{db: db}
}

// Create saves a new gesture frame
func (r *repository) Create(ctx context.Context, gesture *models.Gesture) error {
	return r.db.WithContext(ctx).Create(gesture).Error
}

// AttachInference updates a gesture row in place with an inference result.
// processed_at is stamped by the database server clock.
func (r *repository) AttachInference(ctx context.Context, gestureID uint, input AttachInferenceInput) error {
	updates := map[string]interface{}{
		"model_id":           input.ModelID,
		"predicted_label":    input.PredictedLabel,
		"confidence":         input.Confidence,
		"probs":              models.Probs(input.Probs),
		"processing_time_ms": input.ProcessingTimeMs,
		"processed_at":       gorm.Expr("CURRENT_TIMESTAMP"),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Gesture{}).
		Where("gesture_id = ?", gestureID).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("attaching inference: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrGestureNotFound
	}

	return nil
}

// List retrieves gestures newest first, optionally filtered by user
func (r *repository) List(ctx context.Context, userID *string, limit int) ([]models.Gesture, error) {
	var rows []models.Gesture

	query := r.db.WithContext(ctx).
		Order("received_at DESC").
		Limit(limit)

	if userID != nil && *userID != "" {
		query = query.Where("user_id = ?", *userID)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing gestures: %w", err)
	}

	return rows, nil
}

// GetByID retrieves a gesture by ID
func (r *repository) GetByID(ctx context.Context, id uint) (*models.Gesture, error) {
	var gesture models.Gesture
	err := r.db.WithContext(ctx).First(&gesture, "gesture_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGestureNotFound
		}
		return nil, fmt.Errorf("getting gesture: %w", err)
	}
	return &gesture, nil
}

// Delete removes a gesture by ID
func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Where("gesture_id = ?", id).
		Delete(&models.Gesture{})

	if result.Error != nil {
		return fmt.Errorf("deleting gesture: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrGestureNotFound
	}

	return nil
}
