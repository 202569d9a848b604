package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger 请求日志中间件
// 设计说明：
// 1. 每个请求生成唯一请求ID，写入响应头便于排查问题
// 2. 结构化记录方法、路径、状态码、耗时、客户端IP
// 3. 不记录请求体与Token等敏感信息
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			zap.L().Error("请求处理失败", fields...)
		case status >= 400:
			zap.L().Warn("请求被拒绝", fields...)
		default:
			zap.L().Info("请求完成", fields...)
		}

		// 慢请求单独告警
		if latency > 3*time.Second {
			zap.L().Warn("慢请求",
				zap.String("request_id", requestID),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Duration("latency", latency),
			)
		}
	}
}
