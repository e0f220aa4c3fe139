package predictions

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
)

// repository implements PredictionRepository
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new prediction repository
func NewRepository(db *gorm.DB) PredictionRepository {
	return &repository{db: db}
}

// Create saves a new prediction request
func (r *repository) Create(ctx context.Context, prediction *models.Prediction) error {
	return r.db.WithContext(ctx).Create(prediction).Error
}

// MarkComplete transitions a queued prediction to a terminal status.
// The update is conditioned on status='queued' so the first writer wins;
// completed_at is stamped by the database server clock.
func (r *repository) MarkComplete(ctx context.Context, id uint, status models.PredictionStatus, input CompletePredictionInput) error {
	var updates map[string]interface{}

	if status == models.PredictionStatusFailed {
		updates = map[string]interface{}{
			"status":        models.PredictionStatusFailed,
			"error_message": input.ErrorMessage,
			"completed_at":  gorm.Expr("CURRENT_TIMESTAMP"),
		}
	} else {
		updates = map[string]interface{}{
			"status":       models.PredictionStatusSucceeded,
			"output_text":  input.OutputText,
			"confidence":   input.Confidence,
			"latency_ms":   input.LatencyMs,
			"completed_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}
	}

	result := r.db.WithContext(ctx).
		Model(&models.Prediction{}).
		Where("prediction_id = ? AND status = ?", id, models.PredictionStatusQueued).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("completing prediction: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing row from one that already completed
		existing, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if existing.IsTerminal() {
			return ErrAlreadyCompleted
		}
		return ErrPredictionNotFound
	}

	return nil
}

// List retrieves predictions newest first, optionally filtered by session
func (r *repository) List(ctx context.Context, sessionID *string, limit int) ([]models.Prediction, error) {
	var rows []models.Prediction

	query := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit)

	if sessionID != nil && *sessionID != "" {
		query = query.Where("session_id = ?", *sessionID)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing predictions: %w", err)
	}

	return rows, nil
}

// GetByID retrieves a prediction by ID
func (r *repository) GetByID(ctx context.Context, id uint) (*models.Prediction, error) {
	var prediction models.Prediction
	err := r.db.WithContext(ctx).First(&prediction, "prediction_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPredictionNotFound
		}
		return nil, fmt.Errorf("getting prediction: %w", err)
	}
	return &prediction, nil
}

// Delete removes a prediction by ID
func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Where("prediction_id = ?", id).
		Delete(&models.Prediction{})

	if result.Error != nil {
		return fmt.Errorf("deleting prediction: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrPredictionNotFound
	}

	return nil
}
