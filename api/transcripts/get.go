package transcripts

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
	"github.com/showquotes/transcript-api/internal/services/lines"
)

// Get returns a whole episode transcript by natural numbers
// @Summary Get an episode transcript
// @Description Returns every line of the episode addressed by season number and episode number, in line order.
// @Tags transcripts
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param season path int true "Season number"
// @Param episode path int true "Episode number"
// @Success 200 {object} types.TranscriptResponse "Transcript lines"
// @Failure 400 {object} types.ErrorResponse "Invalid season or episode number"
// @Failure 404 {object} types.ErrorResponse "No such episode in this session"
// @Router /api/v1/transcripts/{season}/{episode} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		seasonNumber, err := strconv.Atoi(c.Param("season"))
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid season number",
			})
			return
		}
		episodeNumber, err := strconv.Atoi(c.Param("episode"))
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid episode number",
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

		results, err := lines.NewRepository(db.DB).Transcript(c.Request.Context(), seasonNumber, episodeNumber)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to fetch transcript",
				Details: err.Error(),
			})
			return
		}
		if len(results) == 0 {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Transcript not found",
			})
			return
		}

		c.JSON(http.StatusOK, types.TranscriptResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Lines:        types.ToLines(results),
			Count:        len(results),
		})
	}
}
