package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheControl sets the Cache-Control header for responses, usually static
// assets. The catalog API routes stay uncached; only the planner page assets
// go through this.
func CacheControl(maxAge time.Duration) gin.HandlerFunc {
	value := fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds()))
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}
