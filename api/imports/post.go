package imports

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
	"github.com/showquotes/transcript-api/internal/database"
	"github.com/showquotes/transcript-api/internal/services/corpus"
)

// Post ingests an extracted corpus into the session's dataset
// @Summary Import a transcript corpus
// @Description Ingests the season/episode transcript files under the given directory into the session's dataset. The whole corpus commits atomically: on any failure the dataset is left exactly as it was. Re-importing the same corpus does not duplicate seasons, episodes or speakers, but does duplicate lines.
// @Tags import
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param request body types.ImportRequest true "Corpus root directory"
// @Success 200 {object} types.ImportResponse "Import statistics"
// @Failure 400 {object} types.ErrorResponse "Missing body or unreadable corpus root"
// @Failure 422 {object} types.ErrorResponse "Malformed episode filename"
// @Failure 500 {object} types.ErrorResponse "Storage fault during import"
// @Router /api/v1/import [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ImportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request format",
				Details: err.Error(),
			})
			return
		}

		info, err := os.Stat(req.Path)
		if err != nil || !info.IsDir() {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Corpus root is not a readable directory",
			})
			return
		}

		var stats *corpus.Stats
		err = deps.Sessions.WithImportLock(types.SessionID(c), func(db *database.DB) error {
			var importErr error
			stats, importErr = deps.Importer.Import(c.Request.Context(), db.DB, req.Path)
			return importErr
		})
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, corpus.ErrMalformedEpisodeName) {
				status = http.StatusUnprocessableEntity
			}
			c.JSON(status, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Import failed; dataset unchanged",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.ImportResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Import committed"},
			Stats:        *stats,
		})
	}
}
