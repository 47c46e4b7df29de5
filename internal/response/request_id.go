package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is the Gin context key for the request ID.
const ContextKeyRequestID = "request_id"

// HeaderRequestID is the header a client or proxy may use to supply its own
// request ID; the same header echoes the ID back on every response.
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware attaches a request ID to every request, reusing the
// caller-supplied one when present. Download responses carry it too, so a
// failed export can be correlated with the server log.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, reqID)
		c.Header(HeaderRequestID, reqID)
		c.Next()
	}
}
