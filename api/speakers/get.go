package speakers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
	"github.com/showquotes/transcript-api/internal/services/catalog"
)

// Get lists the session's speakers
// @Summary List speakers
// @Description Returns every speaker in the session's dataset, ordered by name.
// @Tags speakers
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Success 200 {object} types.SpeakersResponse "Speakers"
// @Failure 500 {object} types.ErrorResponse "Storage fault"
// @Router /api/v1/speakers [get]
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

		speakers, err := catalog.NewRepository(db.DB).ListSpeakers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to list speakers",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.SpeakersResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Speakers:     types.ToSpeakers(speakers),
			Count:        len(speakers),
		})
	}
}
