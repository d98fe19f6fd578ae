package config

import (
	"bytes"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/spf13/cast"

	gotenberg "github.com/porticus-lab/go-gotenberg"
)

// maxOptionsFileSize bounds options files; they hold a handful of keys.
const maxOptionsFileSize = 1 << 20

// LoadConversionOptions reads a YAML mapping of option names to values,
// for example:
//
//	margin_top: 1cm
//	prefer_css_page_size: true
//
// Scalars are converted to strings. Keys are kept as written, so
// unrecognized ones can be reported by the caller.
func LoadConversionOptions(path string) (gotenberg.ConversionOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading options file")
	}
	return ParseConversionOptions(data)
}

// ParseConversionOptions decodes YAML options. See [LoadConversionOptions].
func ParseConversionOptions(data []byte) (gotenberg.ConversionOptions, error) {
	if len(data) > maxOptionsFileSize {
		return nil, errors.Errorf("options file exceeds %d bytes", maxOptionsFileSize)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return gotenberg.ConversionOptions{}, nil
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "parsing options file")
	}

	opts := make(gotenberg.ConversionOptions, len(raw))
	for k, v := range raw {
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, errors.Wrapf(err, "option %q must be a scalar", k)
		}
		opts[gotenberg.OptionName(k)] = s
	}
	return opts, nil
}
