// Package config loads command configuration from the environment and
// conversion options from YAML files.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

const (
	// DebugMode enables development logging.
	DebugMode = "debug"
	// ReleaseMode is the default.
	ReleaseMode = "release"

	// DefaultGotenbergURL is the service address used when GOTENBERG_URL is unset.
	DefaultGotenbergURL = "http://localhost:3000"
	// DefaultListenAddr is the local server address used when LISTEN_ADDR is unset.
	DefaultListenAddr = "localhost:3000"
)

// Config holds the settings shared by the html2pdf and gotenberg-local commands.
type Config struct {
	Environment string
	LogLevel    string

	GotenbergURL     string
	GotenbergTimeout time.Duration

	ListenAddr         string
	ChromePath         string
	ChromeNoSandbox    bool
	ChromeAutoDownload bool
	RenderTimeout      time.Duration
}

// Load reads the configuration from the environment, after loading the
// optional env file named by ENV_FILE_PATH (default ".env").
func Load() Config {
	envFileName := cast.ToString(getOrReturnDefault("ENV_FILE_PATH", ".env"))

	// A missing env file is fine; the process environment still applies.
	_ = godotenv.Load(envFileName)

	config := Config{}

	config.Environment = cast.ToString(getOrReturnDefault("ENVIRONMENT", ReleaseMode))
	config.LogLevel = cast.ToString(getOrReturnDefault("LOG_LEVEL", "info"))

	config.GotenbergURL = cast.ToString(getOrReturnDefault("GOTENBERG_URL", DefaultGotenbergURL))
	config.GotenbergTimeout = cast.ToDuration(getOrReturnDefault("GOTENBERG_TIMEOUT", "0s"))

	config.ListenAddr = cast.ToString(getOrReturnDefault("LISTEN_ADDR", DefaultListenAddr))
	config.ChromePath = cast.ToString(getOrReturnDefault("CHROME_PATH", ""))
	config.ChromeNoSandbox = cast.ToBool(getOrReturnDefault("CHROME_NO_SANDBOX", false))
	config.ChromeAutoDownload = cast.ToBool(getOrReturnDefault("CHROME_AUTO_DOWNLOAD", false))
	config.RenderTimeout = cast.ToDuration(getOrReturnDefault("RENDER_TIMEOUT", "30s"))

	return config
}

// IsDevelopment reports whether the environment asks for debug behaviour.
func (c Config) IsDevelopment() bool {
	return c.Environment == DebugMode
}

func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	_, exists := os.LookupEnv(key)

	if exists {
		return os.Getenv(key)
	}

	return defaultValue
}
