package models

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/types"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/services/registry"
)

// DefaultArtifactURI is recorded when a registration omits model_path
const DefaultArtifactURI = "/models/unknown.bin"

// ListModels retrieves all registered models
// @Summary      List models
// @Description  Retrieve all registered models, newest first
// @Tags         models
// @Produce      json
// @Success      200 {object} object{models=[]models.Model} "List of models"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /models [get]
func ListModels(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := deps.ModelService.List(c.Request.Context())
		if err != nil {
			types.SendError(c, err, "Failed to retrieve models")
			return
		}

		c.JSON(http.StatusOK, gin.H{"models": rows})
	}
}

// GetModel retrieves one model by ID
// @Summary      Get model
// @Description  Retrieve a single registered model by its ID
// @Tags         models
// @Produce      json
// @Param        id path int true "Model ID"
// @Success      200 {object} models.Model "Model metadata"
// @Failure      400 {object} types.ErrorResponse "Invalid model ID"
// @Failure      404 {object} types.ErrorResponse "Model not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /models/{id} [get]
func GetModel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		model, err := deps.ModelService.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, registry.ErrModelNotFound) {
				types.SendNotFound(c, "Model not found")
				return
			}
			types.SendError(c, err, "Failed to retrieve model")
			return
		}

		types.SendSuccess(c, model)
	}
}

// RegisterModel registers a new model's metadata
// @Summary      Register model
// @Description  Store metadata for a trained model artifact. No binary upload happens here.
// @Tags         models
// @Accept       json
// @Produce      json
// @Param        model body types.RegisterModelRequest true "Model metadata"
// @Success      201 {object} types.ModelCreatedResponse "Registered model ID"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /models [post]
func RegisterModel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RegisterModelRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		artifactURI := req.ModelPath
		if artifactURI == "" {
			artifactURI = DefaultArtifactURI
		}

		model, err := deps.ModelService.Register(c.Request.Context(), registry.RegisterModelInput{
			Name:        req.Name,
			Version:     req.Version,
			ModelType:   req.ModelType,
			ArtifactURI: artifactURI,
			InputShape:  req.InputShape,
			OutputShape: []int{req.OutputClasses},
			Status:      req.Status,
			Metrics:     req.Metrics,
			SHA256:      req.SHA256,
		})
		if err != nil {
			if errors.Is(err, registry.ErrMissingRequiredField) {
				types.SendBadRequest(c, err.Error())
				return
			}
			types.SendError(c, err, "Failed to register model")
			return
		}

		types.SendCreated(c, types.ModelCreatedResponse{ModelID: model.ID})
	}
}

// UpdateModel rejects in-place model mutation
// @Summary      Update model
// @Description  Models are immutable once registered; register a new version instead
// @Tags         models
// @Produce      json
// @Param        id path int true "Model ID"
// @Failure      501 {object} types.ErrorResponse "Not implemented"
// @Router       /models/{id} [put]
func UpdateModel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		err := deps.ModelService.Update(c.Request.Context(), id)
		if errors.Is(err, registry.ErrNotImplemented) {
			types.SendNotImplemented(c, "Model update is not supported; register a new version")
			return
		}
		types.SendInternalError(c, "Failed to update model")
	}
}

// DeleteModel removes a model by ID
// @Summary      Delete model
// @Description  Delete a registered model's metadata row
// @Tags         models
// @Produce      json
// @Param        id path int true "Model ID"
// @Success      200 {object} types.DeletedResponse "Deleted"
// @Failure      400 {object} types.ErrorResponse "Invalid model ID"
// @Failure      404 {object} types.ErrorResponse "Model not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /models/{id} [delete]
func DeleteModel(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.ModelService.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, registry.ErrModelNotFound) {
				types.SendNotFound(c, "Model not found")
				return
			}
			types.SendError(c, err, "Failed to delete model")
			return
		}

		types.SendSuccess(c, types.DeletedResponse{Deleted: true})
	}
}
