package gestures

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/types"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/models"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/services/gestures"
)

// ListGestures retrieves recent gesture frames
// @Summary      List gestures
// @Description  Retrieve gesture frames newest first, optionally filtered by user
// @Tags         gestures
// @Produce      json
// @Param        user_id query string false "Filter by user ID"
// @Param        limit query int false "Maximum rows to return (default 100)"
// @Success      200 {object} object{gestures=[]models.Gesture} "List of gestures"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /gestures [get]
func ListGestures(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := types.OptionalStringQuery(c, "user_id")
		limit := types.ParseLimitQuery(c)

		rows, err := deps.GestureService.List(c.Request.Context(), userID, limit)
		if err != nil {
			types.SendError(c, err, "Failed to retrieve gestures")
			return
		}

		c.JSON(http.StatusOK, gin.H{"gestures": rows})
	}
}

// GetGesture retrieves one gesture by ID
// @Summary      Get gesture
// @Description  Retrieve a single gesture frame with decoded landmarks and probabilities
// @Tags         gestures
// @Produce      json
// @Param        id path int true "Gesture ID"
// @Success      200 {object} models.Gesture "Gesture frame"
// @Failure      400 {object} types.ErrorResponse "Invalid gesture ID"
// @Failure      404 {object} types.ErrorResponse "Gesture not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /gestures/{id} [get]
func GetGesture(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		gesture, err := deps.GestureService.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, gestures.ErrGestureNotFound) {
				types.SendNotFound(c, "Gesture not found")
				return
			}
			types.SendError(c, err, "Failed to retrieve gesture")
			return
		}

		types.SendSuccess(c, gesture)
	}
}

// CreateGesture stores a new landmarks-only frame
// @Summary      Submit gesture frame
// @Description  Store a captured hand-landmark frame. Exactly 21 [x, y] pairs are expected.
// @Tags         gestures
// @Accept       json
// @Produce      json
// @Param        gesture body types.CreateGestureRequest true "Landmark frame"
// @Success      201 {object} types.GestureCreatedResponse "Stored gesture ID"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /gestures [post]
func CreateGesture(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateGestureRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if len(req.Landmarks) != models.LandmarkCount {
			types.SendBadRequest(c, fmt.Sprintf("landmarks must contain exactly %d points", models.LandmarkCount))
			return
		}

		gesture, err := deps.GestureService.Create(c.Request.Context(), gestures.CreateGestureInput{
			Landmarks:   req.Landmarks,
			SessionID:   req.SessionID,
			UserID:      req.UserID,
			FrameWidth:  req.FrameWidth,
			FrameHeight: req.FrameHeight,
			Source:      models.GestureSourceAPI,
		})
		if err != nil {
			types.SendError(c, err, "Failed to store gesture")
			return
		}

		types.SendCreated(c, types.GestureCreatedResponse{GestureID: gesture.ID})
	}
}

// AttachInference records an externally computed inference result on a gesture
// @Summary      Attach inference result
// @Description  Record a model's prediction for a stored gesture frame. The row is updated in place and processed_at is stamped by the database clock.
// @Tags         gestures
// @Accept       json
// @Produce      json
// @Param        id path int true "Gesture ID"
// @Param        inference body types.AttachInferenceRequest true "Inference result"
// @Success      200 {object} types.UpdatedResponse "Updated"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Gesture not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /gestures/{id}/inference [post]
func AttachInference(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.AttachInferenceRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		err := deps.GestureService.AttachInference(c.Request.Context(), id, gestures.AttachInferenceInput{
			ModelID:          req.ModelID,
			PredictedLabel:   req.PredictedLabel,
			Confidence:       *req.Confidence,
			Probs:            req.Probs,
			ProcessingTimeMs: req.ProcessingTimeMs,
		})
		if err != nil {
			switch {
			case errors.Is(err, gestures.ErrGestureNotFound):
				types.SendNotFound(c, "Gesture not found")
			case errors.Is(err, gestures.ErrInvalidConfidence):
				types.SendBadRequest(c, err.Error())
			default:
				types.SendError(c, err, "Failed to attach inference result")
			}
			return
		}

		types.SendSuccess(c, types.UpdatedResponse{Updated: true})
	}
}

// UpdateGesture rejects in-place gesture mutation
// @Summary      Update gesture
// @Description  Gesture frames are immutable; use the inference endpoint to attach results
// @Tags         gestures
// @Produce      json
// @Param        id path int true "Gesture ID"
// @Failure      501 {object} types.ErrorResponse "Not implemented"
// @Router       /gestures/{id} [put]
func UpdateGesture(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		err := deps.GestureService.Update(c.Request.Context(), id)
		if errors.Is(err, gestures.ErrNotImplemented) {
			types.SendNotImplemented(c, "Gesture update is not supported")
			return
		}
		types.SendInternalError(c, "Failed to update gesture")
	}
}

// DeleteGesture removes a gesture by ID
// @Summary      Delete gesture
// @Description  Delete a stored gesture frame
// @Tags         gestures
// @Produce      json
// @Param        id path int true "Gesture ID"
// @Success      200 {object} types.DeletedResponse "Deleted"
// @Failure      400 {object} types.ErrorResponse "Invalid gesture ID"
// @Failure      404 {object} types.ErrorResponse "Gesture not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /gestures/{id} [delete]
func DeleteGesture(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.GestureService.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, gestures.ErrGestureNotFound) {
				types.SendNotFound(c, "Gesture not found")
				return
			}
			types.SendError(c, err, "Failed to delete gesture")
			return
		}

		types.SendSuccess(c, types.DeletedResponse{Deleted: true})
	}
}
