package search

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
	"github.com/showquotes/transcript-api/internal/services/lines"
)

// maxContextRadius caps the context window a single request may ask
// for.
const maxContextRadius = 50

// Get searches the session's lines for a phrase
// @Summary Search lines by phrase
// @Description Returns every line containing the phrase as a literal substring (case-insensitive for ASCII), subject to the optional filters. With context > 0, each match carries the surrounding lines of its episode within that radius, the match included.
// @Tags search
// @Produce json
// @Param X-Session-ID header string true "Session id"
// @Param phrase query string true "Substring to search for"
// @Param season query int false "Season id"
// @Param episode query int false "Episode id"
// @Param speaker query int false "Speaker id"
// @Param context query int false "Context radius in lines (0-50)" default(0)
// @Success 200 {object} types.SearchResponse "Matches with optional context"
// @Failure 400 {object} types.ErrorResponse "Missing phrase or invalid parameter"
// @Router /api/v1/search-phrases [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		phrase := c.Query("phrase")
		if phrase == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Search phrase is required",
			})
			return
		}

		filters, err := types.LineFiltersFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: err.Error(),
			})
			return
		}

		radius := 0
		if raw := c.DefaultQuery("context", "0"); raw != "" {
			radius, err = strconv.Atoi(raw)
			if err != nil || radius < 0 {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Context radius must be a non-negative integer",
				})
				return
			}
		}
		if radius > maxContextRadius {
			radius = maxContextRadius
		}

		db, ok := types.SessionDB(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Session dataset not resolved",
			})
			return
		}

		matches, err := lines.NewRepository(db.DB).Search(c.Request.Context(), phrase, filters, radius)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Search failed",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.SearchResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Matches:      types.ToSearchMatches(matches),
			Count:        len(matches),
		})
	}
}
