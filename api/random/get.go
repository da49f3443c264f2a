package random

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
	"github.com/showquotes/transcript-api/internal/services/lines"
)

// Get samples one random line from the session's dataset
// @Summary Get a random line
// @Description Returns one uniformly-random line among those matching the optional filters. Filters combine with AND; with none, the whole dataset is sampled.
// @Tags random
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param season query int false "Season id"
// @Param episode query int false "Episode id"
// @Param speaker query int false "Speaker id"
// @Success 200 {object} types.LineResponse "Random line"
// @Failure 400 {object} types.ErrorResponse "Invalid filter id"
// @Failure 404 {object} types.ErrorResponse "No line matches the filters"
// @Router /api/v1/random-line [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters, err := types.LineFiltersFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: err.Error(),
			})
			return
		}

		db, ok := types.SessionDB(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Session dataset not resolved",
			})
			return
		}

		result, err := lines.NewRepository(db.DB).Random(c.Request.Context(), filters)
		if err != nil {
			if errors.Is(err, lines.ErrLineNotFound) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "No line matches the given filters",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to sample a line",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.LineResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Line:         types.ToLine(*result),
		})
	}
}
