package middleware

import (
	"time"

	"org-management-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger logs one structured line per request once the handler chain has run
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}

		c.Next()

		status := c.Writer.Status()
		log := logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
			"user_agent": c.Request.UserAgent(),
		})
		if len(c.Errors) > 0 {
			log = log.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("request failed")
		case status >= 400:
			log.Warn("request error")
		default:
			log.Info("request")
		}
	}
}
