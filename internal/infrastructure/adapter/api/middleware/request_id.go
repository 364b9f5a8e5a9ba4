package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey is the gin context key holding the request id
const requestIDKey = "request_id"

// RequestIDHeader is the header carrying the request id
const RequestIDHeader = "X-Request-ID"

// RequestID assigns every request an id, honoring one supplied by the
// caller, and echoes it back in the response header
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request id assigned to this request
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
