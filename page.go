package gotenberg

import "strconv"

// Margin represents page margins in centimeters.
type Margin struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// UniformMargin returns a Margin with the same value on all sides.
func UniformMargin(cm float64) Margin {
	return Margin{Top: cm, Right: cm, Bottom: cm, Left: cm}
}

// PageConfig is a typed way to build [ConversionOptions] for the options the
// service accepts.
//
// A zero Margin leaves the service's default margins in place.
type PageConfig struct {
	// Margin specifies page margins in centimeters.
	Margin Margin

	// PreferCSSPageSize gives precedence to any CSS @page size declared
	// in the document over the service's default paper size.
	PreferCSSPageSize bool
}

// Options returns the ConversionOptions described by p.
// A nil PageConfig yields nil options, leaving every service default in place.
func (p *PageConfig) Options() ConversionOptions {
	if p == nil {
		return nil
	}
	opts := ConversionOptions{
		PreferCSSPageSize: strconv.FormatBool(p.PreferCSSPageSize),
	}
	if p.Margin != (Margin{}) {
		opts[MarginTop] = formatCentimeters(p.Margin.Top)
		opts[MarginRight] = formatCentimeters(p.Margin.Right)
		opts[MarginBottom] = formatCentimeters(p.Margin.Bottom)
		opts[MarginLeft] = formatCentimeters(p.Margin.Left)
	}
	return opts
}

func formatCentimeters(cm float64) string {
	return strconv.FormatFloat(cm, 'f', -1, 64) + "cm"
}
