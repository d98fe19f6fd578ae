package chromium

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chromedp/cdproto/page"
)

// PageSettings controls the printed page. Lengths are in inches.
type PageSettings struct {
	PaperWidth        float64
	PaperHeight       float64
	MarginTop         float64
	MarginBottom      float64
	MarginLeft        float64
	MarginRight       float64
	PreferCSSPageSize bool
	PrintBackground   bool
	Scale             float64
}

// DefaultPageSettings mirrors the Gotenberg defaults: Letter paper with
// 0.39in margins.
func DefaultPageSettings() PageSettings {
	return PageSettings{
		PaperWidth:   8.5,
		PaperHeight:  11,
		MarginTop:    0.39,
		MarginBottom: 0.39,
		MarginLeft:   0.39,
		MarginRight:  0.39,
		Scale:        1.0,
	}
}

// resolved fills the paper size and scale from the defaults when unset.
// Margins are kept as given; zero is a valid margin.
func (ps PageSettings) resolved() PageSettings {
	d := DefaultPageSettings()
	if ps.PaperWidth <= 0 || ps.PaperHeight <= 0 {
		ps.PaperWidth, ps.PaperHeight = d.PaperWidth, d.PaperHeight
	}
	if ps.Scale <= 0 {
		ps.Scale = d.Scale
	}
	return ps
}

// printParams builds the DevTools print command for the settings.
func (ps PageSettings) printParams() *page.PrintToPDFParams {
	r := ps.resolved()
	return page.PrintToPDF().
		WithPaperWidth(r.PaperWidth).
		WithPaperHeight(r.PaperHeight).
		WithMarginTop(r.MarginTop).
		WithMarginBottom(r.MarginBottom).
		WithMarginLeft(r.MarginLeft).
		WithMarginRight(r.MarginRight).
		WithScale(r.Scale).
		WithPrintBackground(r.PrintBackground).
		WithPreferCSSPageSize(r.PreferCSSPageSize)
}

// inches per unit.
var lengthUnits = map[string]float64{
	"in": 1,
	"cm": 1 / 2.54,
	"mm": 1 / 25.4,
	"pt": 1.0 / 72,
	"px": 1.0 / 96,
	"pc": 1.0 / 6,
}

// ParseLength converts a length such as "1cm", "10mm", "0.5in", "72pt",
// "96px" or "6pc" to inches. A bare number is taken as inches.
func ParseLength(s string) (float64, error) {
	v := strings.TrimSpace(strings.ToLower(s))
	if v == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidLength)
	}

	factor := 1.0
	if len(v) > 2 {
		if f, ok := lengthUnits[v[len(v)-2:]]; ok {
			factor = f
			v = strings.TrimSpace(v[:len(v)-2])
		}
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidLength, s)
	}
	return n * factor, nil
}
