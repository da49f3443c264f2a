package transcripts

import (
	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
)

func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/transcripts/:season/:episode
	router.GET("/:season/:episode", Get(deps))
}
