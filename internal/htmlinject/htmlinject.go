// Package htmlinject inlines local stylesheets into HTML documents before
// they are sent for conversion.
package htmlinject

import (
	"fmt"
	"os"
	"strings"
)

// InlineCSS inserts css as a <style> block into htmlContent.
// Tries </head> first, then after <body...>, then prepends to the HTML.
func InlineCSS(htmlContent, css string) string {
	if css == "" {
		return htmlContent
	}

	styleBlock := `<style type="text/css">` + sanitizeCSS(css) + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// InlineStylesheetFile reads the stylesheet at path and inlines it.
func InlineStylesheetFile(htmlContent, path string) (string, error) {
	css, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("htmlinject: reading stylesheet: %w", err)
	}
	return InlineCSS(htmlContent, string(css)), nil
}

// sanitizeCSS escapes "</" so the stylesheet cannot close the style element.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
