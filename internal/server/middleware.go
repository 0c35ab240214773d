package server

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDKey is the header carrying the request correlation id.
const RequestIDKey = "X-Request-ID"

// Logger tags each request with a correlation id and logs one line on
// completion, leveled by status class. Liveness probes are skipped.
func Logger(logger *zap.Logger) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		path := string(c.Path())

		skipLogging := path == "/ping"

		requestID := string(c.Request.Header.Peek(RequestIDKey))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response.Header.Set(RequestIDKey, requestID)

		c.Next(ctx)

		if skipLogging {
			return
		}

		latency := time.Since(start)
		status := c.Response.StatusCode()
		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", string(c.Method())),
			zap.String("path", path),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("status", status),
			zap.Duration("latency", latency),
		}

		switch {
		case status >= 500:
			logger.Error("request completed", fields...)
		case status >= 400:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}

// GetRequestID returns the correlation id assigned to the request.
func GetRequestID(c *app.RequestContext) string {
	return string(c.Response.Header.Peek(RequestIDKey))
}

// Recovery converts handler panics into a generic 500 response.
func Recovery(logger *zap.Logger) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("request_id", GetRequestID(c)),
					zap.String("method", string(c.Method())),
					zap.String("path", string(c.Path())),
					zap.String("panic", fmt.Sprintf("%v", r)),
					zap.ByteString("stack", debug.Stack()))

				c.JSON(consts.StatusInternalServerError, utils.H{
					"code":    "INTERNAL_ERROR",
					"message": "internal server error",
				})
				c.Abort()
			}
		}()

		c.Next(ctx)
	}
}
