package gotenberg

import "sort"

// OptionName is a caller-facing rendering option recognized by the client.
type OptionName string

// Recognized options. Any other OptionName is dropped before the request
// is built.
const (
	PreferCSSPageSize OptionName = "prefer_css_page_size"
	MarginTop         OptionName = "margin_top"
	MarginBottom      OptionName = "margin_bottom"
	MarginLeft        OptionName = "margin_left"
	MarginRight       OptionName = "margin_right"
)

// wireFields maps each recognized option to the form field name the
// Chromium HTML route expects.
var wireFields = map[OptionName]string{
	PreferCSSPageSize: "preferCssPageSize",
	MarginTop:         "marginTop",
	MarginBottom:      "marginBottom",
	MarginLeft:        "marginLeft",
	MarginRight:       "marginRight",
}

// WireField returns the form field name for name, and false when the
// option is not recognized.
func WireField(name OptionName) (string, bool) {
	f, ok := wireFields[name]
	return f, ok
}

// OptionNames returns the recognized options in lexical order.
func OptionNames() []OptionName {
	names := make([]OptionName, 0, len(wireFields))
	for n := range wireFields {
		names = append(names, n)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// ConversionOptions holds rendering options keyed by caller-facing name.
// Values are sent as-is, e.g. "1cm" for margins or "true" for
// prefer_css_page_size.
type ConversionOptions map[OptionName]string

// Fields translates the options into form fields, keyed by wire name.
// Unrecognized options are silently dropped.
func (o ConversionOptions) Fields() map[string]string {
	fields := make(map[string]string, len(o))
	for name, value := range o {
		if wire, ok := wireFields[name]; ok {
			fields[wire] = value
		}
	}
	return fields
}

// Unrecognized returns the option names that [ConversionOptions.Fields]
// drops, in lexical order.
func (o ConversionOptions) Unrecognized() []OptionName {
	var dropped []OptionName
	for name := range o {
		if _, ok := wireFields[name]; !ok {
			dropped = append(dropped, name)
		}
	}
	sort.Slice(dropped, func(i, j int) bool { return dropped[i] < dropped[j] })
	return dropped
}

// Merge returns a copy of o overlaid with other. Values in other win.
func (o ConversionOptions) Merge(other ConversionOptions) ConversionOptions {
	out := make(ConversionOptions, len(o)+len(other))
	for k, v := range o {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}
