// Package chromium renders HTML to PDF with a local headless Chrome.
package chromium

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/chromedp/chromedp"
)

// Renderer prints HTML documents to PDF.
//
// A Renderer manages a headless browser instance that is reused across
// renders. It is safe for concurrent use; each render gets its own tab.
//
// Call [Renderer.Close] when the Renderer is no longer needed to release
// browser resources.
type Renderer struct {
	cfg           rendererConfig
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewRenderer starts a headless browser with the given options.
func NewRenderer(opts ...Option) (*Renderer, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.chromePath == "" && cfg.autoDownload {
		path, err := resolveBrowser()
		if err != nil {
			return nil, err
		}
		cfg.chromePath = path
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), cfg.allocatorOptions()...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Launch now so a missing browser fails construction.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("chromium: launching browser: %w", err)
	}

	return &Renderer{
		cfg:           cfg,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close releases the browser process. Close is idempotent.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	r.browserCancel()
	r.allocCancel()
	return nil
}

// Ping reports whether the browser is still usable.
func (r *Renderer) Ping(context.Context) error {
	if err := r.checkClosed(); err != nil {
		return err
	}
	if err := r.browserCtx.Err(); err != nil {
		return fmt.Errorf("chromium: browser gone: %w", err)
	}
	return nil
}

// Render prints html to PDF with the given page settings. Zero paper
// dimensions and scale fall back to [DefaultPageSettings].
func (r *Renderer) Render(ctx context.Context, html string, ps PageSettings) ([]byte, error) {
	if err := r.checkClosed(); err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "gotenberg-render-")
	if err != nil {
		return nil, fmt.Errorf("chromium: creating work dir: %w", err)
	}
	defer os.RemoveAll(dir)

	// Staged under the name Gotenberg gives the upload.
	index := filepath.Join(dir, "index.html")
	if err := os.WriteFile(index, []byte(html), 0o600); err != nil {
		return nil, fmt.Errorf("chromium: staging document: %w", err)
	}

	tab, closeTab := r.openTab(ctx)
	defer closeTab()

	var pdf []byte
	err = chromedp.Run(tab,
		chromedp.Navigate("file://"+filepath.ToSlash(index)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := ps.printParams().Do(ctx)
			pdf = data
			return err
		}),
	)
	if err != nil {
		if ctxErr := tab.Err(); ctxErr != nil {
			return nil, fmt.Errorf("chromium: render aborted: %w", ctxErr)
		}
		return nil, fmt.Errorf("chromium: printing: %w", err)
	}
	return pdf, nil
}

// openTab returns a new tab bounded by both ctx and the render timeout.
// The returned func closes the tab.
func (r *Renderer) openTab(ctx context.Context) (context.Context, context.CancelFunc) {
	tab, cancelTab := chromedp.NewContext(r.browserCtx)
	if r.cfg.timeout > 0 {
		var cancelTimeout context.CancelFunc
		tab, cancelTimeout = context.WithTimeout(tab, r.cfg.timeout)
		prev := cancelTab
		cancelTab = func() {
			cancelTimeout()
			prev()
		}
	}
	stop := context.AfterFunc(ctx, cancelTab)
	return tab, func() {
		stop()
		cancelTab()
	}
}

func (r *Renderer) checkClosed() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	return nil
}
