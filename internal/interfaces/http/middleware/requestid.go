package middleware

import (
	"github.com/gin-gonic/gin"

	"fixdesk/internal/shared/constants"
	"fixdesk/internal/shared/id"
)

// RequestID propagates the caller-supplied X-Request-ID, generating one
// when absent, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.HeaderXRequestID)
		if requestID == "" {
			generated, err := id.Generate(16)
			if err == nil {
				requestID = generated
			}
		}

		c.Set(constants.ContextKeyRequestID, requestID)
		c.Header(constants.HeaderXRequestID, requestID)

		c.Next()
	}
}
