package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"rlconnector/internal/app/pkg/logger"
)

// Logger 访问日志，需挂在 RequestID 之后
func Logger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			log.Errorf(ctx, "[HTTP] %s %s status=%d latency=%s client_ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		case status >= 400:
			log.Warnf(ctx, "[HTTP] %s %s status=%d latency=%s client_ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		default:
			log.Infof(ctx, "[HTTP] %s %s status=%d latency=%s client_ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
		}
	}
}
