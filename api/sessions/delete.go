package sessions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
	sessionsvc "github.com/showquotes/transcript-api/internal/services/sessions"
)

// Delete tears down a session's dataset
// @Summary Delete a session
// @Description Closes and deletes the session's dataset. All imported transcripts for the session are gone afterwards.
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} types.BaseResponse "Session removed"
// @Failure 400 {object} types.ErrorResponse "Invalid session id"
// @Failure 404 {object} types.ErrorResponse "Unknown session id"
// @Router /api/v1/sessions/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		err := deps.Sessions.Teardown(id)
		switch {
		case errors.Is(err, sessionsvc.ErrInvalidSessionID):
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid session id",
			})
		case errors.Is(err, sessionsvc.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Session not found",
			})
		case err != nil:
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to delete session",
				Details: err.Error(),
			})
		default:
			c.JSON(http.StatusOK, types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Session deleted",
			})
		}
	}
}
