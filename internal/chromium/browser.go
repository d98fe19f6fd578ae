package chromium

import (
	"fmt"
	"os/exec"

	"github.com/go-rod/rod/lib/launcher"
)

// resolveBrowser downloads a compatible Chromium binary if one is not
// already cached and returns the path to the executable. The binary is
// stored in ~/.cache/rod/browser (Unix) or %APPDATA%\rod\browser (Windows).
func resolveBrowser() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("chromium: downloading browser: %w", err)
	}
	return path, nil
}

// LookPath returns the first Chrome or Chromium executable found in PATH.
func LookPath() (string, bool) {
	if path, ok := launcher.LookPath(); ok {
		return path, true
	}
	for _, name := range []string{
		"chromium-browser", "chromium", "google-chrome",
		"google-chrome-stable", "chrome",
	} {
		if path, err := exec.LookPath(name); err == nil {
			return path, true
		}
	}
	return "", false
}
