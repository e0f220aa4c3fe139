package predictions

import (
	"github.com/gin-gonic/gin"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/types"
)

// RegisterRoutes registers prediction routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListPredictions(deps))
	router.POST("", CreatePrediction(deps))
	router.GET("/:id", GetPrediction(deps))
	router.POST("/:id/complete", CompletePrediction(deps))
	router.PUT("/:id", UpdatePrediction(deps))
	router.DELETE("/:id", DeletePrediction(deps))
}
