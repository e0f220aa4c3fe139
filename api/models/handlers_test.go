package models_test

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

	modelsapi "github.com/ASL-Live-Subtitles/model-serving-microservice/api/models"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/types"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/database"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/services/registry"
)

type ModelTestSuite struct {
	t      *testing.T
	db     *gorm.DB
	deps   *types.Dependencies
	router *gin.Engine
}

func setupModelTestSuite(t *testing.T) *ModelTestSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(&models.Model{})
	require.NoError(t, err, "Failed to migrate test database")

	deps := &types.Dependencies{
		DB:           &database.DB{DB: db},
		ModelService: registry.NewService(registry.NewRepository(db)),
	}

	router := gin.New()
	group := router.Group("/models")
	modelsapi.RegisterRoutes(group, deps)

	return &ModelTestSuite{
		t:      t,
		db:     db,
		deps:   deps,
		router: router,
	}
}

func (suite *ModelTestSuite) registerTestModel(name, version string) uint {
	payload := map[string]interface{}{
		"name":           name,
		"version":        version,
		"model_type":     "classification",
		"model_path":     "/models/" + name + ".tflite",
		"input_shape":    []int{42},
		"output_classes": 37,
	}

	body, err := json.Marshal(payload)
	require.NoError(suite.t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/models", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	require.Equal(suite.t, http.StatusCreated, w.Code, "Failed to register test model: %s", w.Body.String())

	var resp types.ModelCreatedResponse
	require.NoError(suite.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.ModelID
}

func TestRegisterModel(t *testing.T) {
	suite := setupModelTestSuite(t)

	tests := []struct {
		name           string
		payload        map[string]interface{}
		expectedStatus int
		validateFunc   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"name":           "asl-classifier",
				"version":        "v1.0.0",
				"model_type":     "classification",
				"model_path":     "/models/asl_classifier.tflite",
				"input_shape":    []int{42},
				"output_classes": 37,
			},
			expectedStatus: http.StatusCreated,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp types.ModelCreatedResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.NotZero(t, resp.ModelID)
			},
		},
		{
			name: "missing name rejected",
			payload: map[string]interface{}{
				"version":        "v1.0.0",
				"model_type":     "classification",
				"input_shape":    []int{42},
				"output_classes": 37,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing version rejected",
			payload: map[string]interface{}{
				"name":           "asl-classifier",
				"model_type":     "classification",
				"input_shape":    []int{42},
				"output_classes": 37,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/models", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			suite.router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Response: %s", w.Body.String())
			if tt.validateFunc != nil {
				tt.validateFunc(t, w)
			}
		})
	}
}

func TestRegisterModelDefaultsArtifactURI(t *testing.T) {
	suite := setupModelTestSuite(t)

	payload := map[string]interface{}{
		"name":           "pathless",
		"version":        "v1",
		"model_type":     "classification",
		"input_shape":    []int{42},
		"output_classes": 5,
	}

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/models", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var stored models.Model
	require.NoError(t, suite.db.First(&stored, "name = ?", "pathless").Error)
	assert.Equal(t, modelsapi.DefaultArtifactURI, stored.ArtifactURI)
	assert.Equal(t, models.Shape{5}, stored.OutputShape)
}

func TestListModels(t *testing.T) {
	suite := setupModelTestSuite(t)
	suite.registerTestModel("model-a", "v1")
	suite.registerTestModel("model-b", "v1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/models", nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Models []models.Model `json:"models"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Models, 2)
}

func TestGetModel(t *testing.T) {
	suite := setupModelTestSuite(t)
	id := suite.registerTestModel("asl-classifier", "v2.0.0")

	t.Run("existing model", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/models/%d", id), nil)
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.Model
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "asl-classifier", resp.Name)
		assert.Equal(t, "v2.0.0", resp.Version)
	})

	t.Run("missing model returns 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/models/9999", nil)
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric ID returns 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/models/abc", nil)
		suite.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateModelNotImplemented(t *testing.T) {
	suite := setupModelTestSuite(t)
	id := suite.registerTestModel("immutable", "v1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/models/%d", id), bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestDeleteModel(t *testing.T) {
	suite := setupModelTestSuite(t)
	id := suite.registerTestModel("doomed", "v1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/models/%d", id), nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp types.DeletedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Deleted)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/models/%d", id), nil)
	suite.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
