package registry

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
)

// repository implements ModelRepository
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new model repository
func NewRepository(db *gorm.DB) ModelRepository {
	return &repository{db: db}
}

// Create saves a new model
func (r *repository) Create(ctx context.Context, model *models.Model) error {
	return r.db.WithContext(ctx).Create(model).Error
}

// List retrieves all models, newest first
func (r *repository) List(ctx context.Context) ([]models.Model, error) {
	var rows []models.Model
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}
	return rows, nil
}

// GetByID retrieves a model by ID
func (r *repository) GetByID(ctx context.Context, id uint) (*models.Model, error) {
	var model models.Model
	err := r.db.WithContext(ctx).First(&model, "model_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, fmt.Errorf("getting model: %w", err)
	}
	return &model, nil
}

// Delete removes a model by ID
func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Where("model_id = ?", id).
		Delete(&models.Model{})

	if result.Error != nil {
		return fmt.Errorf("deleting model: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrModelNotFound
	}

	return nil
}
