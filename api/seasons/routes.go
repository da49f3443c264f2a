package seasons

import (
	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
)

func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/seasons
	router.GET("", Get(deps))
	// GET /api/v1/seasons/:id/episodes
	router.GET("/:id/episodes", GetEpisodes(deps))
}
