package types

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/internal/services/lines"
)

// ImportRequest asks for an already-extracted corpus directory to be
// ingested into the caller's session dataset.
type ImportRequest struct {
	Path string `json:"path" binding:"required" example:"/srv/uploads/abc123/corpus"`
}

// LineFiltersFromQuery reads the shared optional filters (season,
// episode, speaker ids) off the query string.
func LineFiltersFromQuery(c *gin.Context) (lines.Filters, error) {
	var filters lines.Filters

	for _, param := range []struct {
		name string
		dest **uint
	}{
		{"season", &filters.Season},
		{"episode", &filters.Episode},
		{"speaker", &filters.Speaker},
	} {
		raw := c.Query(param.name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return lines.Filters{}, fmt.Errorf("invalid %s id %q", param.name, raw)
		}
		id := uint(value)
		*param.dest = &id
	}

	return filters, nil
}
