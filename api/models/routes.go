package models

import (
	"github.com/gin-gonic/gin"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/types"
)

// RegisterRoutes registers model registry routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListModels(deps))
	router.POST("", RegisterModel(deps))
	router.GET("/:id", GetModel(deps))
	router.PUT("/:id", UpdateModel(deps))
	router.DELETE("/:id", DeleteModel(deps))
}
