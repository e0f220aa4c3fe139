package registry

import (
	"context"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
)

// RegisterModelInput carries the fields accepted when registering a model
type RegisterModelInput struct {
	Name        string
	Version     string
	ModelType   string
	ArtifactURI string
	InputShape  []int
	OutputShape []int
	Status      string
	Metrics     map[string]interface{}
	SHA256      *string
}

// ModelService defines the business logic interface for model registry operations
type ModelService interface {
	// Register stores a new model's metadata and returns it with the assigned ID
	Register(ctx context.Context, input RegisterModelInput) (*models.Model, error)

	// List returns all registered models, newest first
	List(ctx context.Context) ([]models.Model, error)

	// Get returns one model by ID
	Get(ctx context.Context, id uint) (*models.Model, error)

	// Update is unsupported and always returns ErrNotImplemented
	Update(ctx context.Context, id uint) error

	// Delete removes a model by ID
	Delete(ctx context.Context, id uint) error
}

// ModelRepository defines the interface for model persistence
type ModelRepository interface {
	Create(ctx context.Context, model *models.Model) error
	List(ctx context.Context) ([]models.Model, error)
	GetByID(ctx context.Context, id uint) (*models.Model, error)
	Delete(ctx context.Context, id uint) error
}
