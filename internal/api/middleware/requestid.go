package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request ID.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "request_id"

// RequestID attaches a request ID to every request. An incoming
// X-Request-ID is honored so callers can correlate across services;
// otherwise a fresh UUID is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request ID from the gin context, if set.
func GetRequestID(c *gin.Context) (string, bool) {
	id, ok := c.Get(RequestIDKey)
	if !ok {
		return "", false
	}
	s, ok := id.(string)
	return s, ok
}
