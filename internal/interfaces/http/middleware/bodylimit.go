package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/precify/backend/internal/interfaces/http/dto"
)

// BodyLimit rejects requests whose declared Content-Length exceeds
// maxBytes and caps streaming bodies at the same limit, so a missing
// or lying Content-Length header cannot bypass it.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponseWithRequestID("ERR_REQUEST_TOO_LARGE",
					"Request body exceeds maximum allowed size",
					c.GetString(RequestIDContextKey)))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
