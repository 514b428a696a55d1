package middlewares

import (
	"strconv"
	"time"

	"github.com/fsdevblog/tradecredit/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics учитывает время обработки запроса. Метка route берется из шаблона маршрута, чтобы id в пути не
// раздували кардинальность.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
