package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
)

func setupService(t *testing.T) ModelService {
	return NewService(NewRepository(setupTestDB(t)))
}

func TestService_Register(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	model, err := svc.Register(ctx, RegisterModelInput{
		Name:        "ASL",
		Version:     "v1",
		ModelType:   "classification",
		ArtifactURI: "/m.bin",
		InputShape:  models.Shape{42},
		OutputShape: models.Shape{37},
	})

	require.NoError(t, err)
	assert.NotZero(t, model.ID)
	assert.Equal(t, models.ModelStatusActive, model.Status)
}

func TestService_RegisterMissingFields(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterModelInput
	}{
		{
			name: "missing name",
			input: RegisterModelInput{
				Version:     "v1",
				ModelType:   "classification",
				ArtifactURI: "/m.bin",
				InputShape:  models.Shape{42},
				OutputShape: models.Shape{37},
			},
		},
		{
			name: "missing input shape",
			input: RegisterModelInput{
				Name:        "ASL",
				Version:     "v1",
				ModelType:   "classification",
				ArtifactURI: "/m.bin",
				OutputShape: models.Shape{37},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			assert.ErrorIs(t, err, ErrMissingRequiredField)
		})
	}
}

func TestService_GetNotFound(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, ErrModelNotFound)
}

func TestService_GetInvalidID(t *testing.T) {
	svc := setupService(t)

	_, err := svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidModelID)
}

func TestService_UpdateNotImplemented(t *testing.T) {
	svc := setupService(t)

	err := svc.Update(context.Background(), 1)
	assert.True(t, errors.Is(err, ErrNotImplemented))
}

func TestService_DeleteIdempotentNotFound(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, 999), ErrModelNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 999), ErrModelNotFound)
}
