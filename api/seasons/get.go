package seasons

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
	"github.com/showquotes/transcript-api/internal/services/catalog"
)

// Get lists the session's seasons
// @Summary List seasons
// @Description Returns every season in the session's dataset, ordered by season number.
// @Tags seasons
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} types.SeasonsResponse "Seasons"
// @Failure 500 {object} types.ErrorResponse "Storage fault"
// @Router /api/v1/seasons [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, ok := types.SessionDB(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Session dataset not resolved",
			})
			return
		}

		seasons, err := catalog.NewRepository(db.DB).ListSeasons(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to list seasons",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.SeasonsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Seasons:      types.ToSeasons(seasons),
			Count:        len(seasons),
		})
	}
}
