package registry

import (
	"context"
	"fmt"
	"log"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
)

// service implements ModelService
type service struct {
	repo ModelRepository
}

// NewService creates a new model registry service
func NewService(repo ModelRepository) ModelService {
	return &service{repo: repo}
}

// Register stores a new model's metadata
func (s *service) Register(ctx context.Context, input RegisterModelInput) (*models.Model, error) {
	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.ModelStatusActive
	}

	model := &models.Model{
		Name:        input.Name,
		Version:     input.Version,
		ModelType:   input.ModelType,
		ArtifactURI: input.ArtifactURI,
		InputShape:  models.Shape(input.InputShape),
		OutputShape: models.Shape(input.OutputShape),
		Status:      status,
		Metrics:     models.Metrics(input.Metrics),
		SHA256:      input.SHA256,
	}

	if err := s.repo.Create(ctx, model); err != nil {
		return nil, fmt.Errorf("registering model: %w", err)
	}

	log.Printf("[DEBUG] Registered model %d (%s %s)", model.ID, model.Name, model.Version)

	return model, nil
}

// List returns all registered models, newest first
func (s *service) List(ctx context.Context) ([]models.Model, error) {
	return s.repo.List(ctx)
}

// Get returns one model by ID
func (s *service) Get(ctx context.Context, id uint) (*models.Model, error) {
	if id == 0 {
		return nil, ErrInvalidModelID
	}
	return s.repo.GetByID(ctx, id)
}

// Update is unsupported for models
func (s *service) Update(ctx context.Context, id uint) error {
	return ErrNotImplemented
}

// Delete removes a model by ID
func (s *service) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidModelID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("[DEBUG] Deleted model %d", id)

	return nil
}

func validateRegisterInput(input RegisterModelInput) error {
	required := map[string]bool{
		"name":         input.Name != "",
		"version":      input.Version != "",
		"model_type":   input.ModelType != "",
		"artifact_uri": input.ArtifactURI != "",
		"input_shape":  len(input.InputShape) > 0,
		"output_shape": len(input.OutputShape) > 0,
	}

	for field, present := range required {
		if !present {
			return fmt.Errorf("%w: %s", ErrMissingRequiredField, field)
		}
	}

	return nil
}
