package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/database"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/pkg/config"
)

func TestNewServerAppliesServerConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("configured timeouts are used", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Server.ReadTimeout = 5 * time.Second
		cfg.Server.WriteTimeout = 7 * time.Second
		cfg.Server.MaxHeaderBytes = 4096

		s := NewServer("127.0.0.1:0", cfg)

		assert.Equal(t, 5*time.Second, s.httpServer.ReadTimeout)
		assert.Equal(t, 7*time.Second, s.httpServer.WriteTimeout)
		assert.Equal(t, 4096, s.httpServer.MaxHeaderBytes)
	})

	t.Run("nil config falls back to defaults", func(t *testing.T) {
		s := NewServer("127.0.0.1:0", nil)

		assert.Equal(t, 30*time.Second, s.httpServer.ReadTimeout)
		assert.Equal(t, 30*time.Second, s.httpServer.WriteTimeout)
		assert.Equal(t, 1<<20, s.httpServer.MaxHeaderBytes)
	})
}

func TestServerCORSGatedByConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	buildEngine := func(t *testing.T, enableCORS bool) *gin.Engine {
		cfg := &config.Config{}
		cfg.Security.EnableCORS = enableCORS

		s := NewServer("127.0.0.1:0", cfg)
		require.NoError(t, s.Initialize())
		return s.Engine()
	}

	t.Run("enabled sets headers", func(t *testing.T) {
		engine := buildEngine(t, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disabled leaves headers unset", func(t *testing.T) {
		engine := buildEngine(t, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestServerRequestSizeLimitFromConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	buildEngine := func(t *testing.T, maxRequestSize int64) *gin.Engine {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		require.NoError(t, err)
		require.NoError(t, db.AutoMigrate(&models.Model{}, &models.Gesture{}, &models.Prediction{}))

		cfg := &config.Config{}
		cfg.Security.MaxRequestSize = maxRequestSize

		s := NewServer("127.0.0.1:0", cfg)
		s.SetDatabase(&database.DB{DB: db})
		require.NoError(t, s.Initialize())
		return s.Engine()
	}

	points := make([][]float64, models.LandmarkCount)
	for i := range points {
		points[i] = []float64{float64(i) * 0.01, float64(i) * 0.02}
	}
	body, err := json.Marshal(map[string]interface{}{"landmarks": points})
	require.NoError(t, err)
	require.Greater(t, len(body), 128, "frame payload should exceed the configured cap")

	t.Run("body over configured cap rejected", func(t *testing.T) {
		engine := buildEngine(t, 128)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/gestures", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("body under configured cap accepted", func(t *testing.T) {
		engine := buildEngine(t, 1<<20)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/gestures", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code, "Response: %s", w.Body.String())
	})
}
