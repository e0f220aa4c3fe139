package types

// Service identity reported by the root descriptor and health endpoints
const (
	ServiceName        = "model-serving-microservice"
	ServiceVersion     = "1.0.0"
	ServiceDescription = "CRUD API for gesture-recognition models, landmark frames, and batch predictions"
)
