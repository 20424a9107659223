package router

import (
	"time"

	"learnhub/controllers"
	"learnhub/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Logger tags each request with an id, hands handlers a logger carrying it,
// and logs method, path, status and latency once the request is done.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		reqLog := log.With("request_id", requestID)
		controllers.SetLogger(c, reqLog)

		c.Next()

		status := c.Writer.Status()
		kv := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
		}
		switch {
		case status >= 500:
			reqLog.Error("request", kv...)
		case status >= 400:
			reqLog.Warn("request", kv...)
		default:
			reqLog.Info("request", kv...)
		}
	}
}
