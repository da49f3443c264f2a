package sessions

import (
	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
)

func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/sessions
	router.POST("", Post(deps))
	// DELETE /api/v1/sessions/:id
	router.DELETE("/:id", Delete(deps))
}
