// Package server exposes a local Gotenberg-compatible conversion service
// backed by a headless Chromium renderer.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/porticus-lab/go-gotenberg/internal/chromium"
)

//go:generate mockgen -source=./server.go -destination=./mocks/renderer.mock.go -package=servermocks Renderer

// Renderer prints HTML to PDF. *chromium.Renderer satisfies it.
type Renderer interface {
	Render(ctx context.Context, html string, ps chromium.PageSettings) ([]byte, error)
	Ping(ctx context.Context) error
}

// Routes served by the engine, matching the Gotenberg API.
const (
	// HealthPath reports renderer availability.
	HealthPath = "/health"
	// ConvertHTMLPath accepts a multipart form with an index.html file.
	ConvertHTMLPath = "/forms/chromium/convert/html"
	// MetricsPath exposes Prometheus metrics.
	MetricsPath = "/prometheus/metrics"
)

// Server routes the health, conversion and metrics endpoints.
type Server struct {
	renderer Renderer
	log      *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics
	engine   *gin.Engine
}

// Option configures a [Server].
type Option func(*Server)

// WithLogger sets the request and error logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRegistry registers the server metrics on reg instead of a private
// registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.registry = reg
		}
	}
}

// New builds a Server around renderer.
func New(renderer Renderer, opts ...Option) *Server {
	s := &Server{
		renderer: renderer,
		log:      zap.NewNop(),
		registry: prometheus.NewRegistry(),
	}
	for _, o := range opts {
		o(s)
	}
	s.metrics = newMetrics(s.registry)

	engine := gin.New()
	engine.Use(gin.Recovery(), traceMiddleware(), s.logMiddleware(), s.metrics.middleware())
	engine.GET(HealthPath, s.health)
	engine.HEAD(HealthPath, s.health)
	engine.POST(ConvertHTMLPath, s.convertHTML)
	engine.GET(MetricsPath, gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	s.engine = engine

	return s
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.engine
}
