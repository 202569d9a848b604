package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/libreria/bookshop/pkg/metrics"
)

// Metrics Prometheus指标中间件
// 路径标签使用路由模板（/books/:id）而非真实路径，避免标签基数爆炸
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		// 未匹配路由（404）归为一类
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsInProgress.Inc()
		start := time.Now()

		c.Next()

		metrics.HTTPRequestsInProgress.Dec()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path,
			strconv.Itoa(c.Writer.Status())).Inc()
	}
}
