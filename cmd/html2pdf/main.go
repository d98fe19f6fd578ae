// html2pdf converts HTML files to PDF through a Gotenberg-compatible service.
//
// Usage:
//
//	html2pdf convert [options] <file.html>
//	html2pdf health [--url <url>]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/porticus-lab/go-gotenberg/internal/config"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return exitUsage
	}

	cfg := config.Load()
	env := &environment{cfg: cfg, stdin: stdin, stdout: stdout, stderr: stderr}

	var err error
	switch args[0] {
	case "convert":
		err = runConvert(ctx, env, args[1:])
	case "health":
		err = runHealth(ctx, env, args[1:])
	case "help", "-h", "--help":
		printUsage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return exitUsage
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if isUsageError(err) {
			return exitUsage
		}
		return exitError
	}
	return exitOK
}

// environment carries the injectable I/O and configuration of one run.
type environment struct {
	cfg    config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `html2pdf - convert HTML to PDF with a Gotenberg service

Usage:
  html2pdf convert [options] <file.html|->
  html2pdf health [--url <url>]

Commands:
  convert   Convert an HTML file (or stdin with "-") to PDF
  health    Check that the conversion service is up

Convert options:
  --url <url>                 Service base URL (default: $GOTENBERG_URL or http://localhost:3000)
  -o, --output <file>         Write PDF to file (default: stdout)
  --options-file <file>       YAML file with conversion options
  --margin-top <len>          Top margin, e.g. 1cm, 0.5in
  --margin-bottom <len>       Bottom margin
  --margin-left <len>         Left margin
  --margin-right <len>        Right margin
  --prefer-css-page-size      Use the CSS @page size
  --css <file>                Inline a local stylesheet into the document
  --timeout <duration>        Bound each HTTP exchange, e.g. 30s
  --strict                    Fail on transport faults and non-200 responses
  -v, --verbose               Log diagnostics to stderr

Examples:
  html2pdf convert -o report.pdf report.html
  html2pdf convert --margin-top 1cm --css print.css page.html > page.pdf
  html2pdf health --url http://gotenberg:3000
`)
}
