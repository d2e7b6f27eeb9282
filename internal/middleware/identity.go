package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID   = "X-Request-ID"
	HeaderRequesterID = "X-Requester-ID"

	ContextRequestID   = "requestID"
	ContextRequesterID = "requesterID"
)

// RequestID propagates a caller supplied request id or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)
		c.Next()
	}
}

// Requester identifies who is calling. There is no authentication, so the
// X-Requester-ID header is trusted and the client IP is the fallback.
func Requester() gin.HandlerFunc {
	return func(c *gin.Context) {
		who := strings.TrimSpace(c.GetHeader(HeaderRequesterID))
		if who == "" {
			who = "ip:" + c.ClientIP()
		} else {
			who = "id:" + who
		}

		c.Set(ContextRequesterID, who)
		c.Next()
	}
}

func requesterOf(c *gin.Context) string {
	return c.GetString(ContextRequesterID)
}
