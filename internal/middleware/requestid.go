package middleware

import (
	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // Request ID generation
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// RequestID tags every request with an ID, reusing the caller's when present
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader) // Caller-supplied ID
		if requestID == "" {
			requestID = uuid.New().String() // Generate request ID for tracing
		}
		c.Set("request_id", requestID)       // Expose to handlers
		c.Header(RequestIDHeader, requestID) // Echo back to the client
		c.Next()
	}
}
