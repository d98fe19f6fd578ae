package server

import (
	"fmt"
	"strconv"

	"github.com/porticus-lab/go-gotenberg/internal/chromium"
)

// pageSettingsFromForm reads the supported Chromium form fields on top of
// the default page settings. Unknown fields are ignored.
func pageSettingsFromForm(values map[string][]string) (chromium.PageSettings, error) {
	ps := chromium.DefaultPageSettings()

	if v, ok := formValue(values, "preferCssPageSize"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return ps, fmt.Errorf("form field 'preferCssPageSize' is invalid (got '%s', resulting to %v)", v, err)
		}
		ps.PreferCSSPageSize = b
	}

	margins := []struct {
		field string
		dst   *float64
	}{
		{"marginTop", &ps.MarginTop},
		{"marginBottom", &ps.MarginBottom},
		{"marginLeft", &ps.MarginLeft},
		{"marginRight", &ps.MarginRight},
	}
	for _, m := range margins {
		v, ok := formValue(values, m.field)
		if !ok {
			continue
		}
		inches, err := chromium.ParseLength(v)
		if err != nil {
			return ps, fmt.Errorf("form field '%s' is invalid (got '%s', resulting to %v)", m.field, v, err)
		}
		*m.dst = inches
	}

	return ps, nil
}

func formValue(values map[string][]string, key string) (string, bool) {
	v, ok := values[key]
	if !ok || len(v) == 0 || v[0] == "" {
		return "", false
	}
	return v[0], true
}
