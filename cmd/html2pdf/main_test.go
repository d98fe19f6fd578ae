package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	up     bool
	status int

	mu     sync.Mutex
	fields map[string][]string
	html   string
}

func (f *fakeService) start(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if f.up {
			_, _ = io.WriteString(w, `{"status":"up"}`)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `{"status":"down"}`)
	})
	mux.HandleFunc("/forms/chromium/convert/html", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var html string
		if fh := r.MultipartForm.File["index.html"]; len(fh) == 1 {
			file, err := fh[0].Open()
			if err == nil {
				b, _ := io.ReadAll(file)
				file.Close()
				html = string(b)
			}
		}
		f.mu.Lock()
		f.fields = r.MultipartForm.Value
		f.html = html
		f.mu.Unlock()

		status := f.status
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = io.WriteString(w, "%PDF-1.4 cli")
			return
		}
		_, _ = io.WriteString(w, "render failed")
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeService) captured() (map[string][]string, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields, f.html
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("ENV_FILE_PATH", filepath.Join(t.TempDir(), "none.env"))
	t.Setenv("LOG_LEVEL", "error")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCLI(t, "")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "Usage:")

	code, stdout, _ := runCLI(t, "", "help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "html2pdf convert")

	code, _, stderr = runCLI(t, "", "render")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "unknown command: render")
}

func TestHealthCommand(t *testing.T) {
	up := (&fakeService{up: true}).start(t)
	down := (&fakeService{}).start(t)

	code, stdout, _ := runCLI(t, "", "health", "--url", up.URL)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, ": up")

	code, stdout, stderr := runCLI(t, "", "health", "--url", down.URL)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stdout, ": down")
	assert.Contains(t, stderr, "service is down")
}

func TestHealthCommand_UsesEnvironmentURL(t *testing.T) {
	srv := (&fakeService{up: true}).start(t)
	t.Setenv("GOTENBERG_URL", srv.URL)

	code, stdout, _ := runCLI(t, "", "health")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, srv.URL)
}

func TestConvertCommand_Stdout(t *testing.T) {
	svc := &fakeService{up: true}
	srv := svc.start(t)
	input := writeFile(t, "page.html", "<h1>hi</h1>")

	code, stdout, stderr := runCLI(t, "", "convert", "--url", srv.URL, "--margin-top", "1cm", input)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "%PDF-1.4 cli", stdout)

	fields, html := svc.captured()
	assert.Equal(t, map[string][]string{"marginTop": {"1cm"}}, fields)
	assert.Equal(t, "<h1>hi</h1>", html)
}

func TestConvertCommand_OutputFileAndOptions(t *testing.T) {
	svc := &fakeService{up: true}
	srv := svc.start(t)
	input := writeFile(t, "page.html", "<html><head></head><body>x</body></html>")
	opts := writeFile(t, "opts.yaml", "margin_top: 2cm\nmargin_left: 1cm\nunsupported_opt: x\n")
	css := writeFile(t, "print.css", "body{margin:0}")
	output := filepath.Join(t.TempDir(), "out.pdf")

	code, _, stderr := runCLI(t, "", "convert",
		"--url", srv.URL,
		"--options-file", opts,
		"--margin-top", "3cm",
		"--prefer-css-page-size",
		"--css", css,
		"-o", output,
		input,
	)
	require.Equal(t, exitOK, code, stderr)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 cli", string(data))

	fields, html := svc.captured()
	assert.Equal(t, map[string][]string{
		"marginTop":         {"3cm"},
		"marginLeft":        {"1cm"},
		"preferCssPageSize": {"true"},
	}, fields)
	assert.Contains(t, html, `<style type="text/css">body{margin:0}</style></head>`)
}

func TestConvertCommand_Stdin(t *testing.T) {
	svc := &fakeService{up: true}
	srv := svc.start(t)

	code, stdout, _ := runCLI(t, "<p>piped</p>", "convert", "--url", srv.URL, "-")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "%PDF-1.4 cli", stdout)

	_, html := svc.captured()
	assert.Equal(t, "<p>piped</p>", html)
}

func TestConvertCommand_ServiceDown(t *testing.T) {
	srv := (&fakeService{}).start(t)
	input := writeFile(t, "page.html", "<p/>")
	output := filepath.Join(t.TempDir(), "out.pdf")

	code, _, stderr := runCLI(t, "", "convert", "--url", srv.URL, "-o", output, input)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "unavailable")
	assert.NoFileExists(t, output)
}

func TestConvertCommand_Strict(t *testing.T) {
	srv := (&fakeService{up: true, status: http.StatusBadRequest}).start(t)
	input := writeFile(t, "page.html", "<p/>")

	code, stdout, _ := runCLI(t, "", "convert", "--url", srv.URL, input)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "render failed", stdout)

	code, stdout, stderr := runCLI(t, "", "convert", "--strict", "--url", srv.URL, input)
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "conversion failed")
}

func TestConvertCommand_BadInvocation(t *testing.T) {
	code, _, _ := runCLI(t, "", "convert")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "", "convert", "a.html", "b.html")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "", "convert", "--no-such-flag", "a.html")
	assert.Equal(t, exitUsage, code)

	code, _, stderr := runCLI(t, "", "convert", filepath.Join(t.TempDir(), "missing.html"))
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "reading")
}
