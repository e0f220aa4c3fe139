package types

// RegisterModelRequest represents a model registration request.
// model_path maps to the stored artifact_uri; output_classes becomes a
// one-element output_shape.
type RegisterModelRequest struct {
	Name          string                 `json:"name" binding:"required" example:"ASL Keypoint Classifier"`
	Version       string                 `json:"version" binding:"required" example:"v1.0.0"`
	ModelType     string                 `json:"model_type" binding:"required" example:"classification"`
	ModelPath     string                 `json:"model_path" example:"/models/asl_classifier.tflite"`
	InputShape    []int                  `json:"input_shape" binding:"required" example:"42"`
	OutputClasses int                    `json:"output_classes" binding:"required" example:"37"`
	Status        string                 `json:"status,omitempty" example:"active"`
	Metrics       map[string]interface{} `json:"metrics,omitempty"`
	SHA256        *string                `json:"sha256,omitempty"`
}

// CreateGestureRequest represents a landmarks submission.
// Exactly 21 [x, y] pairs are expected per captured frame.
type CreateGestureRequest struct {
	Landmarks   [][]float64 `json:"landmarks" binding:"required"`
	SessionID   *string     `json:"session_id,omitempty" example:"sess-42"`
	UserID      *string     `json:"user_id,omitempty" example:"user123"`
	FrameWidth  *int        `json:"frame_width,omitempty" example:"640"`
	FrameHeight *int        `json:"frame_height,omitempty" example:"480"`
}

// AttachInferenceRequest carries an externally computed inference result
type AttachInferenceRequest struct {
	ModelID          uint               `json:"model_id" binding:"required" example:"1"`
	PredictedLabel   string             `json:"predicted_label" binding:"required" example:"A"`
	Confidence       *float64           `json:"confidence" binding:"required" example:"0.95"`
	Probs            map[string]float64 `json:"probs,omitempty"`
	ProcessingTimeMs *int               `json:"processing_time_ms,omitempty" example:"15"`
}

// CreatePredictionRequest queues a new batch prediction
type CreatePredictionRequest struct {
	RequestorUserID *string                `json:"requestor_user_id,omitempty" example:"user123"`
	SessionID       *string                `json:"session_id,omitempty" example:"sess-42"`
	ModelID         *uint                  `json:"model_id,omitempty" example:"1"`
	Params          map[string]interface{} `json:"params,omitempty"`
}

// CompletePredictionRequest reports the outcome of a batch prediction.
// A non-empty error_message marks the prediction failed; otherwise
// output_text is required and the prediction succeeds.
type CompletePredictionRequest struct {
	OutputText   string   `json:"output_text,omitempty" example:"HELLO WORLD"`
	Confidence   *float64 `json:"confidence,omitempty" example:"0.88"`
	LatencyMs    *int     `json:"latency_ms,omitempty" example:"120"`
	ErrorMessage string   `json:"error_message,omitempty"`
}
