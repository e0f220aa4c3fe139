package types

// Status constants for API responses
const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// ModelCreatedResponse for POST /models
type ModelCreatedResponse struct {
	ModelID uint `json:"model_id"`
}

// GestureCreatedResponse for POST /gestures
type GestureCreatedResponse struct {
	GestureID uint `json:"gesture_id"`
}

// PredictionCreatedResponse for POST /predictions
type PredictionCreatedResponse struct {
	PredictionID uint   `json:"prediction_id"`
	UUID         string `json:"uuid"`
	Status       string `json:"status"`
}

// UpdatedResponse for in-place mutations
type UpdatedResponse struct {
	Updated bool   `json:"updated"`
	Status  string `json:"status,omitempty"`
}

// DeletedResponse for DELETE endpoints
type DeletedResponse struct {
	Deleted bool `json:"deleted"`
}

// HealthResponse for the health check endpoint
type HealthResponse struct {
	Status         string `json:"status"`
	Timestamp      string `json:"timestamp"`
	Service        string `json:"service"`
	Version        string `json:"version"`
	DatabaseStatus string `json:"database_status"`
	ModelStatus    string `json:"model_status"`
}

// ServiceInfoResponse for the root service descriptor
type ServiceInfoResponse struct {
	Service     string            `json:"service"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   map[string]string `json:"endpoints"`
}
