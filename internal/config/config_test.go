package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gotenberg "github.com/porticus-lab/go-gotenberg"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE_PATH", filepath.Join(t.TempDir(), "missing.env"))

	cfg := Load()

	assert.Equal(t, ReleaseMode, cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultGotenbergURL, cfg.GotenbergURL)
	assert.Zero(t, cfg.GotenbergTimeout)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Empty(t, cfg.ChromePath)
	assert.False(t, cfg.ChromeNoSandbox)
	assert.False(t, cfg.ChromeAutoDownload)
	assert.Equal(t, 30*time.Second, cfg.RenderTimeout)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("ENV_FILE_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("ENVIRONMENT", DebugMode)
	t.Setenv("GOTENBERG_URL", "http://gotenberg:3000")
	t.Setenv("GOTENBERG_TIMEOUT", "15s")
	t.Setenv("CHROME_NO_SANDBOX", "true")
	t.Setenv("RENDER_TIMEOUT", "1m")

	cfg := Load()

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "http://gotenberg:3000", cfg.GotenbergURL)
	assert.Equal(t, 15*time.Second, cfg.GotenbergTimeout)
	assert.True(t, cfg.ChromeNoSandbox)
	assert.Equal(t, time.Minute, cfg.RenderTimeout)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("GOTENBERG_URL=http://from-file:3000\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("ENV_FILE_PATH", path)
	// godotenv.Load never overrides variables that are already set.
	t.Setenv("LOG_LEVEL", "warn")
	// Setenv restores the original value on cleanup; unset it for the load.
	t.Setenv("GOTENBERG_URL", "")
	require.NoError(t, os.Unsetenv("GOTENBERG_URL"))

	cfg := Load()

	assert.Equal(t, "http://from-file:3000", cfg.GotenbergURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestParseConversionOptions(t *testing.T) {
	data := []byte(`
margin_top: 1cm
margin_bottom: 2
prefer_css_page_size: true
paper_width: 8.5in
`)

	opts, err := ParseConversionOptions(data)
	require.NoError(t, err)

	assert.Equal(t, gotenberg.ConversionOptions{
		gotenberg.MarginTop:         "1cm",
		gotenberg.MarginBottom:      "2",
		gotenberg.PreferCSSPageSize: "true",
		"paper_width":               "8.5in",
	}, opts)
	assert.Equal(t, []gotenberg.OptionName{"paper_width"}, opts.Unrecognized())
}

func TestParseConversionOptions_Empty(t *testing.T) {
	opts, err := ParseConversionOptions(nil)
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestParseConversionOptions_Invalid(t *testing.T) {
	tests := map[string]string{
		"not a mapping": "- margin_top\n- 1cm\n",
		"nested value":  "margin_top:\n  value: 1cm\n",
		"broken yaml":   "margin_top: [1cm\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseConversionOptions([]byte(data))
			assert.Error(t, err)
		})
	}
}

func TestLoadConversionOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("margin_left: 0.5in\n"), 0o600))

	opts, err := LoadConversionOptions(path)
	require.NoError(t, err)
	assert.Equal(t, gotenberg.ConversionOptions{gotenberg.MarginLeft: "0.5in"}, opts)

	_, err = LoadConversionOptions(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
