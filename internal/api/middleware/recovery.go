package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"org-management-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a handler into a 500 internal_failure response
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
					"panic":  fmt.Sprint(recovered),
					"method": c.Request.Method,
					"path":   c.Request.URL.Path,
					"stack":  string(debug.Stack()),
				}).Error("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
					"kind":  "internal_failure",
				})
			}
		}()
		c.Next()
	}
}
