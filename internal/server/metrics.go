package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	summaryVec  *prometheus.SummaryVec
	counterVec  *prometheus.CounterVec
	conversions *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		summaryVec: factory.NewSummaryVec(
			prometheus.SummaryOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
				Objectives: map[float64]float64{
					0.5:  0.05,
					0.9:  0.01,
					0.95: 0.005,
					0.99: 0.001,
				},
			},
			[]string{"method", "path", "status_code"},
		),
		counterVec: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		conversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chromium_conversions_total",
				Help: "HTML to PDF conversions by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		statusCode := strconv.Itoa(c.Writer.Status())

		m.summaryVec.WithLabelValues(c.Request.Method, path, statusCode).Observe(time.Since(start).Seconds())
		m.counterVec.WithLabelValues(c.Request.Method, path, statusCode).Inc()
	}
}

func (m *metrics) conversion(outcome string) {
	m.conversions.WithLabelValues(outcome).Inc()
}
