// gotenberg-local serves a Gotenberg-compatible conversion API backed by a
// local headless Chromium, for development and tests without Docker.
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/porticus-lab/go-gotenberg/internal/chromium"
	"github.com/porticus-lab/go-gotenberg/internal/config"
	"github.com/porticus-lab/go-gotenberg/internal/logger"
	"github.com/porticus-lab/go-gotenberg/internal/server"
)

func main() {
	cfg := config.Load()

	listenAddr := flag.String("listen", cfg.ListenAddr, "HTTP listen address")
	chromePath := flag.String("chrome-path", cfg.ChromePath, "Chrome or Chromium executable")
	noSandbox := flag.Bool("no-sandbox", cfg.ChromeNoSandbox, "disable the Chrome sandbox (required as root)")
	autoDownload := flag.Bool("auto-download", cfg.ChromeAutoDownload, "download Chromium when none is configured")
	renderTimeout := flag.Duration("render-timeout", cfg.RenderTimeout, "maximum duration of a single conversion")
	flag.Parse()

	log, err := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	_, _ = maxprocs.Set(maxprocs.Logger(log.Sugar().Infof))

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ln, err := net.Listen("tcp", *listenAddr)
	if err != nil {
		log.Fatal("listen", zap.String("addr", *listenAddr), zap.Error(err))
	}

	opts := []chromium.Option{chromium.WithRenderTimeout(*renderTimeout)}
	if *chromePath != "" {
		opts = append(opts, chromium.WithChromePath(*chromePath))
	}
	if *noSandbox {
		opts = append(opts, chromium.WithNoSandbox())
	}
	if *autoDownload {
		opts = append(opts, chromium.WithAutoDownload())
	}

	renderer, err := chromium.NewRenderer(opts...)
	if err != nil {
		log.Fatal("starting chromium", zap.Error(err))
	}
	defer renderer.Close()

	srv := &http.Server{
		Handler:           server.New(renderer, server.WithLogger(log)).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGTERM, syscall.SIGINT)

	stopHTTP, errHTTPCh := serveHTTP(log, srv, ln)
	defer stopHTTP()

	select {
	case err := <-errHTTPCh:
		log.Error("http server", zap.Error(err))
	case <-shutdown:
		log.Info("shutdown signal received")
	}
}

func serveHTTP(log *zap.Logger, srv *http.Server, ln net.Listener) (func(), <-chan error) {
	errHTTPCh := make(chan error, 1)
	go func() {
		defer close(errHTTPCh)

		log.Info("starting http server", zap.String("addr", ln.Addr().String()))

		err := srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errHTTPCh <- errors.Wrap(err, "srv.Serve failed")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("srv.Shutdown failed", zap.Error(err))
		}

		<-errHTTPCh
		log.Info("http server stopped")
	}, errHTTPCh
}
