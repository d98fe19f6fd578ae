package chromium

import (
	"time"

	"github.com/chromedp/chromedp"
)

// rendererConfig holds internal configuration for a Renderer.
type rendererConfig struct {
	chromePath   string
	timeout      time.Duration
	noSandbox    bool
	headless     string
	autoDownload bool
}

func defaultConfig() rendererConfig {
	return rendererConfig{
		timeout:  30 * time.Second,
		headless: "new",
	}
}

// Option configures a [Renderer].
type Option func(*rendererConfig)

// WithChromePath sets the path to the Chrome or Chromium executable.
// By default chromedp searches standard locations.
func WithChromePath(path string) Option {
	return func(c *rendererConfig) {
		c.chromePath = path
	}
}

// WithRenderTimeout sets the maximum duration for a single render.
// Defaults to 30 seconds. A zero or negative value disables the timeout.
func WithRenderTimeout(d time.Duration) Option {
	return func(c *rendererConfig) {
		c.timeout = d
	}
}

// WithNoSandbox disables the Chrome sandbox. This is required when
// running as root, for example inside Docker containers.
func WithNoSandbox() Option {
	return func(c *rendererConfig) {
		c.noSandbox = true
	}
}

// WithAutoDownload fetches a compatible Chromium build when no explicit
// path is configured.
func WithAutoDownload() Option {
	return func(c *rendererConfig) {
		c.autoDownload = true
	}
}

// switches passed to every browser on top of the chromedp defaults.
var browserSwitches = []string{
	"disable-gpu",
	"disable-dev-shm-usage",
	"disable-extensions",
	"disable-background-networking",
	"disable-sync",
	"disable-translate",
	"no-first-run",
}

func (c rendererConfig) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := make([]chromedp.ExecAllocatorOption, 0, len(chromedp.DefaultExecAllocatorOptions)+len(browserSwitches)+3)
	opts = append(opts, chromedp.DefaultExecAllocatorOptions[:]...)
	for _, name := range browserSwitches {
		opts = append(opts, chromedp.Flag(name, true))
	}
	opts = append(opts, chromedp.Flag("headless", c.headless))
	if c.noSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}
	if c.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(c.chromePath))
	}
	return opts
}
