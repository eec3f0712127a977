package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"barbershop/internal/pkg/response"
)

// ErrorLogger logs request errors and 5xx responses, and recovers from panics.
func ErrorLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				log.Error("panic recovered",
					append(requestFields(c, start), zap.Error(err), zap.ByteString("stack", debug.Stack()))...,
				)
				response.Abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
				return
			}

			if len(c.Errors) == 0 {
				if c.Writer.Status() >= http.StatusInternalServerError {
					log.Error("request failed", requestFields(c, start)...)
				}
				return
			}

			for _, e := range c.Errors {
				log.Error("request error",
					append(requestFields(c, start), zap.Error(e.Err), zap.Any("meta", e.Meta))...,
				)
			}
		}()

		c.Next()
	}
}

func requestFields(c *gin.Context, start time.Time) []zap.Field {
	return []zap.Field{
		zap.Int("status", c.Writer.Status()),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.String("client_ip", c.ClientIP()),
		zap.Int64("user_id", c.GetInt64("user_id")),
		zap.String("role", c.GetString("role")),
		zap.String("request_id", c.GetString("request_id")),
		zap.Duration("latency", time.Since(start)),
	}
}
