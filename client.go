package gotenberg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	healthPath      = "/health"
	convertHTMLPath = "/forms/chromium/convert/html"

	indexFileName    = "index.html"
	indexContentType = "text/html"
)

// Client submits HTML documents to a Gotenberg-compatible conversion service.
//
// A Client holds no mutable state after construction and is safe for
// concurrent use, provided each call writes to its own sink.
type Client struct {
	baseURL string
	cfg     clientConfig
	http    *resty.Client
	log     *zap.Logger
}

// NewClient returns a Client for the service at baseURL. It performs no I/O.
func NewClient(baseURL string, opts ...Option) *Client {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	var rc *resty.Client
	if cfg.httpClient != nil {
		// Copy so timeouts set below never leak into the caller's client.
		hc := *cfg.httpClient
		rc = resty.NewWithClient(&hc)
	} else {
		// resty.New installs a cookie jar; calls must not share state.
		rc = resty.New().SetCookieJar(nil)
	}
	// The service's status codes are checked as returned, never followed.
	rc.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	rc.SetLogger(cfg.logger.Sugar())
	rc.SetHeader("User-Agent", cfg.userAgent)
	if cfg.timeout > 0 {
		rc.SetTimeout(cfg.timeout)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		cfg:     cfg,
		http:    rc,
		log:     cfg.logger.With(zap.String("component", "gotenberg")),
	}
}

// BaseURL returns the service base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx)
}

// conversionRequest is the per-call payload: the document plus the
// translated form fields.
type conversionRequest struct {
	html   string
	fields map[string]string
}

func newConversionRequest(html string, options ConversionOptions) conversionRequest {
	return conversionRequest{html: html, fields: options.Fields()}
}

func (r conversionRequest) build(req *resty.Request) *resty.Request {
	return req.
		SetMultipartField(indexFileName, indexFileName, indexContentType, strings.NewReader(r.html)).
		SetFormData(r.fields)
}

// Convert sends html to the service and returns its response.
//
// The health probe runs first; when it fails Convert returns
// [ErrServiceDown] without sending the document. A non-200 answer yields
// both the Result (holding the error body) and an error wrapping
// [ErrConversionFailed]. Transport faults follow the client's [FaultPolicy].
func (c *Client) Convert(ctx context.Context, html string, options ConversionOptions) (*Result, error) {
	if c.Health(ctx) != Up {
		return nil, ErrServiceDown
	}

	if dropped := options.Unrecognized(); len(dropped) > 0 {
		c.log.Debug("dropping unrecognized options", zap.Any("options", dropped))
	}

	req := newConversionRequest(html, options)
	resp, err := req.build(c.request(ctx)).Post(c.baseURL + convertHTMLPath)
	if err != nil {
		return c.handleFault(err)
	}

	res := &Result{data: resp.Body(), statusCode: resp.StatusCode()}
	if res.statusCode != http.StatusOK {
		return res, fmt.Errorf("%w: status %d", ErrConversionFailed, res.statusCode)
	}
	return res, nil
}

func (c *Client) handleFault(err error) (*Result, error) {
	if c.cfg.faultPolicy == ReportFault {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	c.log.Warn("conversion request failed, degrading to empty response", zap.Error(err))
	return &Result{degraded: true}, nil
}

// ConvertHTMLToPDF converts html and writes the service response to sink.
//
// It returns false when the service is down, when the sink rejects the
// write, or on a transport fault under [ReportFault]. Otherwise it returns
// true once the body has been written, even if that body is an error page
// or empty: true means the call ran to completion, not that sink holds a
// valid PDF.
func (c *Client) ConvertHTMLToPDF(ctx context.Context, html string, options ConversionOptions, sink io.Writer) bool {
	res, err := c.Convert(ctx, html, options)
	if err != nil {
		if res == nil {
			return false
		}
		if errors.Is(err, ErrConversionFailed) {
			c.log.Warn("service rejected conversion", zap.Int("status", res.StatusCode()))
		}
	}

	if _, err := res.WriteTo(sink); err != nil {
		c.log.Error("writing conversion result", zap.Error(err))
		return false
	}
	return true
}

// --- Package-level convenience functions ---

// CheckHealth probes the service at baseURL using a temporary [Client].
func CheckHealth(ctx context.Context, baseURL string, opts ...Option) bool {
	return NewClient(baseURL, opts...).CheckHealth(ctx)
}

// ConvertHTMLToPDF converts html through the service at baseURL using a
// temporary [Client]. See [Client.ConvertHTMLToPDF].
func ConvertHTMLToPDF(ctx context.Context, baseURL, html string, options ConversionOptions, sink io.Writer, opts ...Option) bool {
	return NewClient(baseURL, opts...).ConvertHTMLToPDF(ctx, html, options, sink)
}
