package types

import (
	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/internal/database"
)

// Gin context keys set by the session middleware.
const (
	// SessionHeader carries the client's session id on every
	// session-scoped request.
	SessionHeader = "X-Session-ID"

	contextSessionID = "sessionID"
	contextSessionDB = "sessionDB"
)

// SetSession stores the resolved session id and dataset handle on the
// request context.
func SetSession(c *gin.Context, id string, db *database.DB) {
	c.Set(contextSessionID, id)
	c.Set(contextSessionDB, db)
}

// SessionID returns the session id resolved for this request.
func SessionID(c *gin.Context) string {
	return c.GetString(contextSessionID)
}

// SessionDB returns the dataset handle resolved for this request.
func SessionDB(c *gin.Context) (*database.DB, bool) {
	value, ok := c.Get(contextSessionDB)
	if !ok {
		return nil, false
	}
	db, ok := value.(*database.DB)
	return db, ok
}
