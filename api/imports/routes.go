package imports

import (
	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
)

func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/import
	router.POST("", Post(deps))
}
