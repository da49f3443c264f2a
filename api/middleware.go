package api

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/showquotes/transcript-api/api/types"
	"github.com/showquotes/transcript-api/internal/services/sessions"
	"golang.org/x/time/rate"
)

// SessionRequired resolves the caller's session from the X-Session-ID
// header into an isolated dataset handle. Handlers behind this
// middleware never touch the registry themselves.
func SessionRequired(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(types.SessionHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: types.SessionHeader + " header is required",
			})
			return
		}

		db, err := deps.Sessions.Get(id)
		if err != nil {
			if errors.Is(err, sessions.ErrInvalidSessionID) {
				c.AbortWithStatusJSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Invalid session id",
				})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to open session dataset",
				Details: err.Error(),
			})
			return
		}

		types.SetSession(c, id, db)
		c.Next()
	}
}

// clientLimiter holds a rate limiter and its last accessed time
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func PerClientRateLimit(rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once, rps int, burst int) gin.HandlerFunc {
	cleanupInitialized.Do(func() {
		go cleanupOldRateLimiters(rateLimiters, cleanupStop)
	})

	return func(c *gin.Context) {
		clientIP := c.ClientIP()

		limiterInterface, _ := rateLimiters.LoadOrStore(clientIP, &clientLimiter{
			limiter:  rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), burst),
			lastSeen: time.Now(),
		})

		cl := limiterInterface.(*clientLimiter)
		cl.lastSeen = time.Now()

		if !cl.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please slow down your requests.",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func cleanupOldRateLimiters(rateLimiters *sync.Map, cleanupStop chan struct{}) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			rateLimiters.Range(func(key, value interface{}) bool {
				cl := value.(*clientLimiter)
				if now.Sub(cl.lastSeen) > 10*time.Minute {
					rateLimiters.Delete(key)
				}
				return true
			})
		case <-cleanupStop:
			return
		}
	}
}
