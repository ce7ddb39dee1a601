package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/observability"
)

const (
	// RouteUnmatched labels requests no route claimed, keeping scanner noise in one series.
	RouteUnmatched = "unmatched"

	metricsRoute = "/metrics"
)

// Metrics records request counts and latency by route template. Scrapes of
// /metrics are not recorded. Routes in streaming are counted without latency
// and stay out of the inflight gauge.
func Metrics(m *observability.Metrics, streaming ...string) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	streams := make(map[string]bool, len(streaming))
	for _, route := range streaming {
		streams[route] = true
	}

	return func(c *gin.Context) {
		route := c.FullPath()
		if route == metricsRoute {
			c.Next()
			return
		}
		if route == "" {
			route = RouteUnmatched
		}
		method := c.Request.Method

		if streams[route] {
			c.Next()
			m.CountAPI(method, route, strconv.Itoa(c.Writer.Status()))
			return
		}

		start := time.Now()
		m.ApiInflightInc()
		defer m.ApiInflightDec()
		c.Next()
		m.ObserveAPI(method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
