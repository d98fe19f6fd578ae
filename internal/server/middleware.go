package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	traceHeader = "Gotenberg-Trace"
	traceKey    = "trace"
)

// traceMiddleware propagates the caller's trace id or assigns a new one.
func traceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		trace := c.GetHeader(traceHeader)
		if trace == "" {
			trace = uuid.NewString()
		}
		c.Set(traceKey, trace)
		c.Header(traceHeader, trace)
		c.Next()
	}
}

func traceOf(c *gin.Context) string {
	return c.GetString(traceKey)
}

func (s *Server) logMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.log.Info("request",
			zap.String("trace", traceOf(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
