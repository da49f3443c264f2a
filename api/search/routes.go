package search

import (
	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
)

func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/search-phrases
	router.GET("", Get(deps))
}
