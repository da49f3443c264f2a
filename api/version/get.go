package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Build information, overridden at link time.
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
)

// Get handles version requests
// @Summary Version information
// @Description Returns the running build's version and commit.
// @Tags version
// @Produce json
// @Success 200 {object} map[string]interface{} "Build information"
// @Router /version [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    "Transcript API",
			"version": Version,
			"commit":  GitCommit,
		})
	}
}
