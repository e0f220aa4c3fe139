package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/types"
)

// Database and overall status values reported by the health check
const (
	databaseConnected   = "connected"
	databaseUnreachable = "unreachable"

	// modelStatusLoaded is reported unconditionally: model binaries are
	// managed outside this service, so there is nothing to probe.
	modelStatusLoaded = "loaded"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Report service health. The database is probed with a live ping; a failed ping degrades the status without failing the request.
// @Tags         health
// @Produce      json
// @Success      200 {object} types.HealthResponse "Health status"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			Status:         types.StatusHealthy,
			Timestamp:      time.Now().UTC().Format(time.RFC3339),
			Service:        types.ServiceName,
			Version:        types.ServiceVersion,
			DatabaseStatus: databaseConnected,
			ModelStatus:    modelStatusLoaded,
		}

		if deps == nil || deps.DB == nil || deps.DB.HealthCheck() != nil {
			response.Status = types.StatusDegraded
			response.DatabaseStatus = databaseUnreachable
		}

		c.JSON(http.StatusOK, response)
	}
}
