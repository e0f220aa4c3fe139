package gestures_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gesturesapi "github.com/ASL-Live-Subtitles/model-serving-microservice/api/gestures"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/types"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/database"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/services/gestures"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/services/registry"
)

type GestureTestSuite struct {
	t      *testing.T
	db     *gorm.DB
	deps   *types.Dependencies
	router *gin.Engine
}

func setupGestureTestSuite(t *testing.T) *GestureTestSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(&models.Model{}, &models.Gesture{})
	require.NoError(t, err, "Failed to migrate test database")

	deps := &types.Dependencies{
		DB:             &database.DB{DB: db},
		ModelService:   registry.NewService(registry.NewRepository(db)),
		GestureService: gestures.NewService(gestures.NewRepository(db)),
	}

	router := gin.New()
	group := router.Group("/gestures")
	gesturesapi.RegisterRoutes(group, deps)

	return &GestureTestSuite{
		t:      t,
		db:     db,
		deps:   deps,
		router: router,
	}
}

// testLandmarks builds a full 21-point hand frame
func testLandmarks() [][]float64 {
	points := make([][]float64, models.LandmarkCount)
	for i := range points {
		points[i] = []float64{float64(i) * 0.01, float64(i) * 0.02}
	}
	return points
}

func (suite *GestureTestSuite) createTestGesture(userID string) uint {
	payload := map[string]interface{}{
		"landmarks": testLandmarks(),
		"user_id":   userID,
	}

	body, err := json.Marshal(payload)
	require.NoError(suite.t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/gestures", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	require.Equal(suite.t, http.StatusCreated, w.Code, "Failed to create test gesture: %s", w.Body.String())

	var resp types.GestureCreatedResponse
	require.NoError(suite.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.GestureID
}

func TestCreateGesture(t *testing.T) {
	suite := setupGestureTestSuite(t)

	tests := []struct {
		name           string
		payload        map[string]interface{}
		expectedStatus int
	}{
		{
			name: "valid frame",
			payload: map[string]interface{}{
				"landmarks":    testLandmarks(),
				"session_id":   "sess-1",
				"user_id":      "user123",
				"frame_width":  640,
				"frame_height": 480,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "too few landmarks rejected",
			payload: map[string]interface{}{
				"landmarks": [][]float64{{0.1, 0.2}, {0.3, 0.4}},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "too many landmarks rejected",
			payload: map[string]interface{}{
				"landmarks": append(testLandmarks(), [][]float64{{0.9, 0.9}, {0.8, 0.8}, {0.7, 0.7}, {0.6, 0.6}}...),
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing landmarks rejected",
			payload:        map[string]interface{}{"user_id": "user123"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/gestures", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			suite.router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Response: %s", w.Body.String())
		})
	}
}

func TestCreateGestureStampsAPISource(t *testing.T) {
	suite := setupGestureTestSuite(t)
	id := suite.createTestGesture("user123")

	var stored models.Gesture
	require.NoError(t, suite.db.First(&stored, "gesture_id = ?", id).Error)
	assert.Equal(t, models.GestureSourceAPI, stored.Source)
	assert.False(t, stored.ReceivedAt.IsZero())
}

func TestGetGesture(t *testing.T) {
	suite := setupGestureTestSuite(t)
	id := suite.createTestGesture("user123")

	t.Run("existing gesture with decoded landmarks", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/gestures/%d", id), nil)
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.Gesture
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Landmarks, models.LandmarkCount)
		assert.Equal(t, "user123", *resp.UserID)
	})

	t.Run("missing gesture returns 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/gestures/9999", nil)
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListGesturesFiltersAndLimits(t *testing.T) {
	suite := setupGestureTestSuite(t)
	suite.createTestGesture("alice")
	suite.createTestGesture("alice")
	suite.createTestGesture("bob")

	t.Run("filter by user", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/gestures?user_id=alice", nil)
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Gestures []models.Gesture `json:"gestures"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Gestures, 2)
	})

	t.Run("limit caps results", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/gestures?limit=1", nil)
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Gestures []models.Gesture `json:"gestures"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Gestures, 1)
	})
}

func TestAttachInference(t *testing.T) {
	suite := setupGestureTestSuite(t)
	id := suite.createTestGesture("user123")

	payload := map[string]interface{}{
		"model_id":           1,
		"predicted_label":    "A",
		"confidence":         0.95,
		"probs":              map[string]float64{"A": 0.95, "B": 0.05},
		"processing_time_ms": 15,
	}

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/gestures/%d/inference", id), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Response: %s", w.Body.String())

	var resp types.UpdatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Updated)

	var stored models.Gesture
	require.NoError(t, suite.db.First(&stored, "gesture_id = ?", id).Error)
	require.NotNil(t, stored.PredictedLabel)
	assert.Equal(t, "A", *stored.PredictedLabel)
	assert.NotNil(t, stored.ProcessedAt)
}

func TestAttachInferenceErrors(t *testing.T) {
	suite := setupGestureTestSuite(t)
	id := suite.createTestGesture("user123")

	t.Run("missing gesture returns 404", func(t *testing.T) {
		body := []byte(`{"model_id": 1, "predicted_label": "A", "confidence": 0.9}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/gestures/9999/inference", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("out-of-range confidence returns 400", func(t *testing.T) {
		body := []byte(`{"model_id": 1, "predicted_label": "A", "confidence": 1.5}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/gestures/%d/inference", id), bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateGestureNotImplemented(t *testing.T) {
	suite := setupGestureTestSuite(t)
	id := suite.createTestGesture("user123")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/gestures/%d", id), bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestDeleteGesture(t *testing.T) {
	suite := setupGestureTestSuite(t)
	id := suite.createTestGesture("user123")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/gestures/%d", id), nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/gestures/%d", id), nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
