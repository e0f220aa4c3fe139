package predictions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ASL-Live-Subtitles/model-serving-microservice/api/types"
	"github.com/ASL-Live-Subtitles/model-serving-microservice/internal/services/predictions"
)

// ListPredictions retrieves recent batch predictions
// @Summary      List predictions
// @Description  Retrieve batch prediction requests newest first, optionally filtered by session
// @Tags         predictions
// @Produce      json
// @Param        session_id query string false "Filter by session ID"
// @Param        limit query int false "Maximum rows to return (default 100)"
// @Success      200 {object} object{predictions=[]models.Prediction} "List of predictions"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /predictions [get]
func ListPredictions(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := types.OptionalStringQuery(c, "session_id")
		limit := types.ParseLimitQuery(c)

		rows, err := deps.PredictionService.List(c.Request.Context(), sessionID, limit)
		if err != nil {
			types.SendError(c, err, "Failed to retrieve predictions")
			return
		}

		c.JSON(http.StatusOK, gin.H{"predictions": rows})
	}
}

// GetPrediction retrieves one prediction by ID
// @Summary      Get prediction
// @Description  Retrieve a single batch prediction with decoded params
// @Tags         predictions
// @Produce      json
// @Param        id path int true "Prediction ID"
// @Success      200 {object} models.Prediction "Prediction row"
// @Failure      400 {object} types.ErrorResponse "Invalid prediction ID"
// @Failure      404 {object} types.ErrorResponse "Prediction not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /predictions/{id} [get]
func GetPrediction(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		prediction, err := deps.PredictionService.Get(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, predictions.ErrPredictionNotFound) {
				types.SendNotFound(c, "Prediction not found")
				return
			}
			types.SendError(c, err, "Failed to retrieve prediction")
			return
		}

		types.SendSuccess(c, prediction)
	}
}

// CreatePrediction queues a new batch prediction request
// @Summary      Queue prediction
// @Description  Queue a batch prediction request. Work is performed externally; the row starts in status "queued".
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Param        prediction body types.CreatePredictionRequest true "Prediction request"
// @Success      201 {object} types.PredictionCreatedResponse "Queued prediction"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /predictions [post]
func CreatePrediction(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreatePredictionRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		prediction, err := deps.PredictionService.Create(c.Request.Context(), predictions.CreatePredictionInput{
			RequestorUserID: req.RequestorUserID,
			SessionID:       req.SessionID,
			ModelID:         req.ModelID,
			Params:          req.Params,
		})
		if err != nil {
			types.SendError(c, err, "Failed to queue prediction")
			return
		}

		types.SendCreated(c, types.PredictionCreatedResponse{
			PredictionID: prediction.ID,
			UUID:         prediction.UUID,
			Status:       string(prediction.Status),
		})
	}
}

// CompletePrediction reports the outcome of a batch prediction
// @Summary      Complete prediction
// @Description  Transition a queued prediction to succeeded or failed. A non-empty error_message marks it failed; otherwise output_text is required. The transition fires at most once.
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Param        id path int true "Prediction ID"
// @Param        completion body types.CompletePredictionRequest true "Completion report"
// @Success      200 {object} types.UpdatedResponse "Updated with final status"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Prediction not found"
// @Failure      409 {object} types.ErrorResponse "Prediction already completed"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /predictions/{id}/complete [post]
func CompletePrediction(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.CompletePredictionRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		status, err := deps.PredictionService.MarkComplete(c.Request.Context(), id, predictions.CompletePredictionInput{
			OutputText:   req.OutputText,
			Confidence:   req.Confidence,
			LatencyMs:    req.LatencyMs,
			ErrorMessage: req.ErrorMessage,
		})
		if err != nil {
			switch {
			case errors.Is(err, predictions.ErrPredictionNotFound):
				types.SendNotFound(c, "Prediction not found")
			case errors.Is(err, predictions.ErrAlreadyCompleted):
				types.SendConflict(c, "Prediction already completed")
			case errors.Is(err, predictions.ErrMissingOutputText),
				errors.Is(err, predictions.ErrInvalidConfidence):
				types.SendBadRequest(c, err.Error())
			default:
				types.SendError(c, err, "Failed to complete prediction")
			}
			return
		}

		types.SendSuccess(c, types.UpdatedResponse{Updated: true, Status: string(status)})
	}
}

// UpdatePrediction rejects in-place prediction mutation
// @Summary      Update prediction
// @Description  Predictions are immutable; use the complete endpoint to report outcomes
// @Tags         predictions
// @Produce      json
// @Param        id path int true "Prediction ID"
// @Failure      501 {object} types.ErrorResponse "Not implemented"
// @Router       /predictions/{id} [put]
func UpdatePrediction(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		err := deps.PredictionService.Update(c.Request.Context(), id)
		if errors.Is(err, predictions.ErrNotImplemented) {
			types.SendNotImplemented(c, "Prediction update is not supported")
			return
		}
		types.SendInternalError(c, "Failed to update prediction")
	}
}

// DeletePrediction removes a prediction by ID
// @Summary      Delete prediction
// @Description  Delete a batch prediction row
// @Tags         predictions
// @Produce      json
// @Param        id path int true "Prediction ID"
// @Success      200 {object} types.DeletedResponse "Deleted"
// @Failure      400 {object} types.ErrorResponse "Invalid prediction ID"
// @Failure      404 {object} types.ErrorResponse "Prediction not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /predictions/{id} [delete]
func DeletePrediction(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.PredictionService.Delete(c.Request.Context(), id); err != nil {
			if errors.Is(err, predictions.ErrPredictionNotFound) {
				types.SendNotFound(c, "Prediction not found")
				return
			}
			types.SendError(c, err, "Failed to delete prediction")
			return
		}

		types.SendSuccess(c, types.DeletedResponse{Deleted: true})
	}
}
