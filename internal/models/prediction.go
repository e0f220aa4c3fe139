package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PredictionStatus represents the lifecycle state of a batch prediction
type PredictionStatus string

const (
	PredictionStatusQueued    PredictionStatus = "queued"
	PredictionStatusSucceeded PredictionStatus = "succeeded"
	PredictionStatusFailed    PredictionStatus = "failed"
)

// Prediction represents a batch unit of inference work tracked to
// completion. The actual inference runs outside this service; the row
// transitions queued -> succeeded|failed exactly once via MarkComplete.
type Prediction struct {
	ID              uint             `json:"prediction_id" gorm:"column:prediction_id;primaryKey;autoIncrement"`
	UUID            string           `json:"uuid" gorm:"uniqueIndex"`
	RequestorUserID *string          `json:"requestor_user_id,omitempty" gorm:"index"`
	SessionID       *string          `json:"session_id,omitempty" gorm:"index"`
	ModelID         *uint            `json:"model_id,omitempty"`
	Status          PredictionStatus `json:"status" gorm:"default:'queued';index"`
	Params          Params           `json:"params" gorm:"type:json"`
	CreatedAt       time.Time        `json:"created_at" gorm:"index"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`

	// Completion fields; output_text/confidence/latency_ms are set on
	// success, error_message on failure, never both.
	OutputText   *string  `json:"output_text,omitempty"`
	Confidence   *float64 `json:"confidence,omitempty"`
	LatencyMs    *int     `json:"latency_ms,omitempty"`
	ErrorMessage *string  `json:"error_message,omitempty"`
}

// BeforeCreate generates a UUID before creating a new prediction
func (p *Prediction) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	return nil
}

// IsTerminal returns true if the prediction has reached a final state
func (p *Prediction) IsTerminal() bool {
	return p.Status == PredictionStatusSucceeded || p.Status == PredictionStatusFailed
}

// TableName specifies the table name for GORM
func (Prediction) TableName() string {
	return "predictions"
}
