package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	gotenberg "github.com/porticus-lab/go-gotenberg"
)

var errServiceDown = errors.New("service is down")

func runHealth(ctx context.Context, env *environment, args []string) error {
	var (
		url     string
		timeout time.Duration
		verbose bool
	)
	fs := flag.NewFlagSet("health", flag.ContinueOnError)
	fs.SetOutput(env.stderr)
	fs.StringVar(&url, "url", env.cfg.GotenbergURL, "service base URL")
	fs.DurationVar(&timeout, "timeout", env.cfg.GotenbergTimeout, "bound the probe")
	fs.BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return usageError{err}
	}
	if fs.NArg() > 0 {
		return newUsageError("health takes no arguments")
	}

	log, err := newLogger(env, verbose)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	client := gotenberg.NewClient(url, gotenberg.WithLogger(log), gotenberg.WithTimeout(timeout))
	status := client.Health(ctx)
	fmt.Fprintf(env.stdout, "%s: %s\n", client.BaseURL(), status)
	if status != gotenberg.Up {
		return errServiceDown
	}
	return nil
}
