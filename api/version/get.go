package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/types"
)

// Get handles root service descriptor requests
// @Summary      Service descriptor
// @Description  Report the service name, version, and the endpoints it exposes
// @Tags         version
// @Produce      json
// @Success      200 {object} types.ServiceInfoResponse "Service descriptor"
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.ServiceInfoResponse{
			Service:     types.ServiceName,
			Version:     types.ServiceVersion,
			Description: types.ServiceDescription,
			Endpoints: map[string]string{
				"models":      "/models",
				"gestures":    "/gestures",
				"predictions": "/predictions",
				"health":      "/health",
				"docs":        "/docs",
			},
		})
	}
}

// GetVersion handles version requests
// @Summary      Version
// @Description  Report version and build information
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]string "Version info"
// @Router       /version [get]
func GetVersion() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    types.ServiceName,
			"version": types.ServiceVersion,
			"status":  "running",
		})
	}
}
