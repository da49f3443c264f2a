package seasons

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
	"github.com/showquotes/transcript-api/internal/services/catalog"
)

// GetEpisodes lists one season's episodes
// @Summary List a season's episodes
// @Description Returns every episode of the given season, ordered by episode number.
// @Tags seasons
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param id path int true "Season id"
// @Success 200 {object} types.EpisodesResponse "Episodes"
// @Failure 400 {object} types.ErrorResponse "Invalid season id"
// @Failure 404 {object} types.ErrorResponse "Season not found"
// @Router /api/v1/seasons/{id}/episodes [get]
func GetEpisodes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid season id",
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

		episodes, err := catalog.NewRepository(db.DB).ListEpisodes(c.Request.Context(), uint(seasonID))
		if err != nil {
			if errors.Is(err, catalog.ErrSeasonNotFound) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Season not found",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to list episodes",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.EpisodesResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Episodes:     types.ToEpisodes(episodes),
			Count:        len(episodes),
		})
	}
}
