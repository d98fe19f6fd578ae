package gotenberg

import (
	"context"
	"net/http"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// HealthStatus is the outcome of a health probe.
type HealthStatus int

const (
	// Down covers every failure: transport errors, non-200 responses and
	// bodies that do not report "up".
	Down HealthStatus = iota
	// Up means the service answered 200 with {"status": "up"}.
	Up
)

// String returns "up" or "down".
func (s HealthStatus) String() string {
	if s == Up {
		return "up"
	}
	return "down"
}

// Health probes GET {baseURL}/health. It never fails: any fault collapses
// into [Down]. The probe is never cached.
func (c *Client) Health(ctx context.Context) HealthStatus {
	resp, err := c.request(ctx).Get(c.baseURL + healthPath)
	if err != nil {
		c.log.Debug("health probe failed", zap.String("url", c.baseURL), zap.Error(err))
		return Down
	}
	if resp.StatusCode() != http.StatusOK {
		c.log.Debug("health probe returned unexpected status",
			zap.String("url", c.baseURL), zap.Int("status", resp.StatusCode()))
		return Down
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		c.log.Debug("health probe returned malformed body", zap.String("url", c.baseURL))
		return Down
	}
	status := gjson.GetBytes(body, "status")
	if status.Type != gjson.String || status.Str != "up" {
		c.log.Debug("service reports not up",
			zap.String("url", c.baseURL), zap.String("status", status.Raw))
		return Down
	}
	return Up
}

// CheckHealth reports whether the service is up.
func (c *Client) CheckHealth(ctx context.Context) bool {
	return c.Health(ctx) == Up
}
