package types

import (
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/database"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/services/gestures"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/services/predictions"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/services/registry"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	ModelService      registry.ModelService
	GestureService    gestures.GestureService
	PredictionService predictions.PredictionService
}
