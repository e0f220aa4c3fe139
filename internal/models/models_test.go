package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandmarksValueAndScan(t *testing.T) {
	landmarks := Landmarks{{0.5, 0.6}, {0.52, 0.58}, {0.54, 0.56}}

	value, err := landmarks.Value()
	require.NoError(t, err)

	var decoded Landmarks
	err = decoded.Scan(value)
	require.NoError(t, err)
	assert.Equal(t, landmarks, decoded)
}

func TestLandmarksScanString(t *testing.T) {
	// SQLite returns JSON columns as TEXT
	var decoded Landmarks
	err := decoded.Scan(`[[0.1,0.2],[0.3,0.4]]`)
	require.NoError(t, err)
	assert.Equal(t, Landmarks{{0.1, 0.2}, {0.3, 0.4}}, decoded)
}

func TestLandmarksScanInvalidType(t *testing.T) {
	var decoded Landmarks
	err := decoded.Scan(42)
	assert.Error(t, err)
}

func TestShapeRoundTrip(t *testing.T) {
	shape := Shape{42}

	value, err := shape.Value()
	require.NoError(t, err)

	var decoded Shape
	err = decoded.Scan(value)
	require.NoError(t, err)
	assert.Equal(t, shape, decoded)
}

func TestProbsScanNil(t *testing.T) {
	var probs Probs
	err := probs.Scan(nil)
	require.NoError(t, err)
	assert.Nil(t, probs)
}

func TestParamsValueDefaultsToEmptyObject(t *testing.T) {
	var params Params

	value, err := params.Value()
	require.NoError(t, err)

	var decoded map[string]interface{}
	err = json.Unmarshal(value.([]byte), &decoded)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestParamsScanNil(t *testing.T) {
	var params Params
	err := params.Scan(nil)
	require.NoError(t, err)
	assert.NotNil(t, params)
	assert.Empty(t, params)
}

func TestModelIsActive(t *testing.T) {
	model := Model{Status: ModelStatusActive}
	assert.True(t, model.IsActive())

	model.Status = ModelStatusInactive
	assert.False(t, model.IsActive())
}

func TestGestureHasInference(t *testing.T) {
	gesture := Gesture{}
	assert.False(t, gesture.HasInference())
}

func TestPredictionIsTerminal(t *testing.T) {
	tests := []struct {
		status   PredictionStatus
		terminal bool
	}{
		{PredictionStatusQueued, false},
		{PredictionStatusSucceeded, true},
		{PredictionStatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			p := Prediction{Status: tt.status}
			assert.Equal(t, tt.terminal, p.IsTerminal())
		})
	}
}

func TestModelTableNames(t *testing.T) {
	assert.Equal(t, "models", Model{}.TableName())
	assert.Equal(t, "gestures", Gesture{}.TableName())
	assert.Equal(t, "predictions", Prediction{}.TableName())
}
