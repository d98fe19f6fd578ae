package main

import (
	"context"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	gotenberg "github.com/porticus-lab/go-gotenberg"
	"github.com/porticus-lab/go-gotenberg/internal/config"
	"github.com/porticus-lab/go-gotenberg/internal/htmlinject"
	"github.com/porticus-lab/go-gotenberg/internal/logger"
)

type convertFlags struct {
	url         string
	output      string
	optionsFile string
	css         string
	timeout     time.Duration
	strict      bool
	verbose     bool

	marginTop         string
	marginBottom      string
	marginLeft        string
	marginRight       string
	preferCSSPageSize bool
}

func parseConvertFlags(env *environment, args []string) (*convertFlags, []string, gotenberg.ConversionOptions, error) {
	f := &convertFlags{}
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(env.stderr)

	fs.StringVar(&f.url, "url", env.cfg.GotenbergURL, "service base URL")
	fs.StringVarP(&f.output, "output", "o", "", "write PDF to file")
	fs.StringVar(&f.optionsFile, "options-file", "", "YAML file with conversion options")
	fs.StringVar(&f.css, "css", "", "inline a local stylesheet")
	fs.DurationVar(&f.timeout, "timeout", env.cfg.GotenbergTimeout, "bound each HTTP exchange")
	fs.BoolVar(&f.strict, "strict", false, "fail on transport faults and non-200 responses")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log diagnostics to stderr")
	fs.StringVar(&f.marginTop, "margin-top", "", "top margin")
	fs.StringVar(&f.marginBottom, "margin-bottom", "", "bottom margin")
	fs.StringVar(&f.marginLeft, "margin-left", "", "left margin")
	fs.StringVar(&f.marginRight, "margin-right", "", "right margin")
	fs.BoolVar(&f.preferCSSPageSize, "prefer-css-page-size", false, "use the CSS @page size")

	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, usageError{err}
	}

	// Only flags given on the command line override the options file.
	flagOpts := gotenberg.ConversionOptions{}
	for name, value := range map[string]struct {
		opt gotenberg.OptionName
		val string
	}{
		"margin-top":           {gotenberg.MarginTop, f.marginTop},
		"margin-bottom":        {gotenberg.MarginBottom, f.marginBottom},
		"margin-left":          {gotenberg.MarginLeft, f.marginLeft},
		"margin-right":         {gotenberg.MarginRight, f.marginRight},
		"prefer-css-page-size": {gotenberg.PreferCSSPageSize, strconv.FormatBool(f.preferCSSPageSize)},
	} {
		if fs.Changed(name) {
			flagOpts[value.opt] = value.val
		}
	}

	return f, fs.Args(), flagOpts, nil
}

func runConvert(ctx context.Context, env *environment, args []string) error {
	f, positional, flagOpts, err := parseConvertFlags(env, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return newUsageError("convert expects exactly one input file, got %d", len(positional))
	}

	log, err := newLogger(env, f.verbose)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	html, err := readInput(env, positional[0])
	if err != nil {
		return err
	}
	if f.css != "" {
		if html, err = htmlinject.InlineStylesheetFile(html, f.css); err != nil {
			return err
		}
	}

	opts := gotenberg.ConversionOptions{}
	if f.optionsFile != "" {
		if opts, err = config.LoadConversionOptions(f.optionsFile); err != nil {
			return err
		}
	}
	opts = opts.Merge(flagOpts)
	for _, name := range opts.Unrecognized() {
		log.Warn("ignoring unsupported option", zap.String("option", string(name)))
	}

	clientOpts := []gotenberg.Option{
		gotenberg.WithLogger(log),
		gotenberg.WithTimeout(f.timeout),
	}
	if f.strict {
		clientOpts = append(clientOpts, gotenberg.WithFaultPolicy(gotenberg.ReportFault))
	}
	client := gotenberg.NewClient(f.url, clientOpts...)

	if f.strict {
		return convertStrict(ctx, env, client, html, opts, f.output)
	}
	return convertLenient(ctx, env, client, html, opts, f.output)
}

// convertStrict only writes output once the service returned 200.
func convertStrict(ctx context.Context, env *environment, client *gotenberg.Client, html string, opts gotenberg.ConversionOptions, output string) error {
	res, err := client.Convert(ctx, html, opts)
	if err != nil {
		return errors.Wrap(err, "converting")
	}
	if output == "" {
		_, err = res.WriteTo(env.stdout)
		return errors.Wrap(err, "writing output")
	}
	return errors.Wrap(res.WriteToFile(output, 0o644), "writing output")
}

// convertLenient writes whatever the service returned.
func convertLenient(ctx context.Context, env *environment, client *gotenberg.Client, html string, opts gotenberg.ConversionOptions, output string) error {
	if output == "" {
		if !client.ConvertHTMLToPDF(ctx, html, opts, env.stdout) {
			return errors.Errorf("conversion service at %s is unavailable", client.BaseURL())
		}
		return nil
	}

	out, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	ok := client.ConvertHTMLToPDF(ctx, html, opts, out)
	if err := out.Close(); err != nil {
		return errors.Wrap(err, "closing output file")
	}
	if !ok {
		_ = os.Remove(output)
		return errors.Errorf("conversion service at %s is unavailable", client.BaseURL())
	}
	return nil
}

func readInput(env *environment, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(env.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(data), nil
}

func newLogger(env *environment, verbose bool) (*zap.Logger, error) {
	level := env.cfg.LogLevel
	if verbose {
		level = logger.LevelDebug
	}
	log, err := logger.New(level, env.cfg.IsDevelopment())
	return log, errors.Wrap(err, "building logger")
}
