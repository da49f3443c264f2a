package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
)

// Get handles health check requests
// @Summary Health check
// @Description Reports service liveness.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service status"
// @Router /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
