package models

import "time"

// Model status values
const (
	ModelStatusActive   = "active"
	ModelStatusInactive = "inactive"
)

// Model represents registered ML model metadata. The model binary itself
// lives behind ArtifactURI and is never resolved by this service.
type Model struct {
	ID          uint      `json:"model_id" gorm:"column:model_id;primaryKey;autoIncrement"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex:idx_models_name_version"`
	Version     string    `json:"version" gorm:"not null;uniqueIndex:idx_models_name_version"`
	ModelType   string    `json:"model_type" gorm:"not null"`
	ArtifactURI string    `json:"artifact_uri" gorm:"not null"`
	InputShape  Shape     `json:"input_shape" gorm:"type:json;not null"`
	OutputShape Shape     `json:"output_shape" gorm:"type:json;not null"`
	Status      string    `json:"status" gorm:"default:'active'"`
	Metrics     Metrics   `json:"metrics,omitempty" gorm:"type:json"`
	SHA256      *string   `json:"sha256,omitempty" gorm:"column:sha256"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsActive returns true if the model is available for predictions
func (m *Model) IsActive() bool {
	return m.Status == ModelStatusActive
}

// TableName specifies the table name for GORM
func (Model) TableName() string {
	return "models"
}
