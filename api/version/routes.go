package version

import (
	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
)

func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) {
	// GET /version
	engine.GET("/version", Get())
}
