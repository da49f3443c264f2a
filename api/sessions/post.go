package sessions

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
)

// Post creates a new session with an empty, isolated dataset
// @Summary Create a session
// @Description Allocates a fresh session id backed by an empty, isolated dataset. Pass the id in the X-Session-ID header on all other calls.
// @Tags sessions
// @Produce json
// @Success 201 {object} types.SessionResponse "New session id"
// @Failure 500 {object} types.ErrorResponse "Failed to allocate the session dataset"
// @Router /api/v1/sessions [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := deps.Sessions.NewSession()
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to create session",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusCreated, types.SessionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			SessionID:    id,
		})
	}
}
