package models

import "time"

// Gesture source values
const (
	GestureSourceWeb = "web"
	GestureSourceAPI = "api"
)

// LandmarkCount is the number of tracked hand points per captured frame
const LandmarkCount = 21

// Gesture represents one captured frame of hand landmarks plus the
// inference result attached after external processing. Inference fields
// stay null until AttachInference runs, then model_id, predicted_label,
// confidence and processed_at are set together.
type Gesture struct {
	ID          uint      `json:"gesture_id" gorm:"column:gesture_id;primaryKey;autoIncrement"`
	SessionID   *string   `json:"session_id,omitempty" gorm:"index"`
	UserID      *string   `json:"user_id,omitempty" gorm:"index"`
	Landmarks   Landmarks `json:"landmarks" gorm:"type:json;not null"`
	FrameWidth  *int      `json:"frame_width,omitempty"`
	FrameHeight *int      `json:"frame_height,omitempty"`
	Source      string    `json:"source" gorm:"default:'web'"`
	ReceivedAt  time.Time `json:"received_at" gorm:"index"`

	// Inference result fields
	ModelID          *uint      `json:"model_id,omitempty"`
	PredictedLabel   *string    `json:"predicted_label,omitempty"`
	Confidence       *float64   `json:"confidence,omitempty"`
	Probs            Probs      `json:"probs,omitempty" gorm:"type:json"`
	ProcessingTimeMs *int       `json:"processing_time_ms,omitempty"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
}

// HasInference returns true if an inference result has been attached
func (g *Gesture) HasInference() bool {
	return g.ProcessedAt != nil
}

// TableName specifies the table name for GORM
func (Gesture) TableName() string {
	return "gestures"
}
