package gotenberg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWireField(t *testing.T) {
	tests := []struct {
		name OptionName
		want string
		ok   bool
	}{
		{PreferCSSPageSize, "preferCssPageSize", true},
		{MarginTop, "marginTop", true},
		{MarginBottom, "marginBottom", true},
		{MarginLeft, "marginLeft", true},
		{MarginRight, "marginRight", true},
		{"paper_width", "", false},
		{"marginTop", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := WireField(tt.name)
		assert.Equal(t, tt.ok, ok, "WireField(%q)", tt.name)
		assert.Equal(t, tt.want, got, "WireField(%q)", tt.name)
	}
}

func TestOptionNames(t *testing.T) {
	assert.Equal(t, []OptionName{
		MarginBottom, MarginLeft, MarginRight, MarginTop, PreferCSSPageSize,
	}, OptionNames())
}

func TestFields_RecognizedOnly(t *testing.T) {
	opts := ConversionOptions{
		PreferCSSPageSize: "true",
		MarginTop:         "1cm",
		MarginBottom:      "2cm",
		MarginLeft:        "3cm",
		MarginRight:       "4cm",
	}

	fields := opts.Fields()

	assert.Len(t, fields, len(opts))
	for name, value := range opts {
		wire, _ := WireField(name)
		assert.Equal(t, value, fields[wire], "value for %s", name)
	}
	assert.Empty(t, opts.Unrecognized())
}

func TestFields_DropsUnrecognized(t *testing.T) {
	opts := ConversionOptions{
		MarginTop:         "1cm",
		"unsupported_opt": "x",
		"paper_width":     "8.5",
		"marginBottom":    "2cm",
	}

	fields := opts.Fields()

	assert.Equal(t, map[string]string{"marginTop": "1cm"}, fields)
	assert.Equal(t, []OptionName{"marginBottom", "paper_width", "unsupported_opt"}, opts.Unrecognized())
}

func TestFields_Empty(t *testing.T) {
	var opts ConversionOptions
	assert.Empty(t, opts.Fields())
	assert.Empty(t, opts.Unrecognized())
}

func TestMerge(t *testing.T) {
	base := ConversionOptions{MarginTop: "1cm", MarginLeft: "1cm"}
	override := ConversionOptions{MarginTop: "2cm"}

	merged := base.Merge(override)

	assert.Equal(t, ConversionOptions{MarginTop: "2cm", MarginLeft: "1cm"}, merged)
	assert.Equal(t, "1cm", base[MarginTop], "Merge must not modify the receiver")
}
