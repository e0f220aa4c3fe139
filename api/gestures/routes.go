package gestures

import (
	"github.com/gin-gonic/gin"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/types"
)

// RegisterRoutes registers gesture routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListGestures(deps))
	router.POST("", CreateGesture(deps))
	router.GET("/:id", GetGesture(deps))
	router.POST("/:id/inference", AttachInference(deps))
	router.PUT("/:id", UpdateGesture(deps))
	router.DELETE("/:id", DeleteGesture(deps))
}
