package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"restaurant-reservations/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// RenderErrors writes a body for handlers that recorded an error but wrote nothing.
// The last public error carries the response; anything else becomes a 500.
func RenderErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		if public := c.Errors.ByType(gin.ErrorTypePublic).Last(); public != nil {
			if resp, ok := public.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		c.JSON(http.StatusInternalServerError, httperr.Internal())
	}
}

// RecoverPanics must be installed first so it also covers the other middleware.
func RecoverPanics() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}
			slog.Error("panic while handling request",
				"panic", recovered,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
				"stack", string(debug.Stack()),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Internal())
		}()
		c.Next()
	}
}
