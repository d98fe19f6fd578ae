package gotenberg

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// FaultPolicy decides what a conversion does when the POST to the service
// fails at the transport level.
type FaultPolicy int

const (
	// DegradeToEmpty treats a transport fault as an empty response body:
	// [Client.ConvertHTMLToPDF] writes nothing and still returns true, and
	// [Client.Convert] returns an empty, degraded [Result] with a nil error.
	DegradeToEmpty FaultPolicy = iota
	// ReportFault surfaces the fault: ConvertHTMLToPDF returns false and
	// Convert returns an error wrapping [ErrTransport].
	ReportFault
)

// String returns the policy name used in logs.
func (p FaultPolicy) String() string {
	switch p {
	case DegradeToEmpty:
		return "degrade-to-empty"
	case ReportFault:
		return "report-fault"
	default:
		return "unknown"
	}
}

// clientConfig holds internal configuration for a Client.
type clientConfig struct {
	httpClient  *http.Client
	timeout     time.Duration
	logger      *zap.Logger
	faultPolicy FaultPolicy
	userAgent   string
}

func defaultConfig() clientConfig {
	return clientConfig{
		logger:      zap.NewNop(),
		faultPolicy: DegradeToEmpty,
		userAgent:   "go-gotenberg",
	}
}

// Option configures a [Client].
type Option func(*clientConfig)

// WithHTTPClient sets the underlying HTTP client. Its transport is reused
// for both the health probe and the conversion request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithTimeout bounds every HTTP exchange made by the client.
// By default no timeout is applied; callers rely on the context instead.
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *clientConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFaultPolicy selects how transport faults during conversion are handled.
// Defaults to [DegradeToEmpty].
func WithFaultPolicy(p FaultPolicy) Option {
	return func(c *clientConfig) {
		c.faultPolicy = p
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}
