// Package gotenberg is a client for Gotenberg-compatible HTML to PDF
// conversion services.
//
// # Converting
//
// Create a [Client] for the service base URL and convert an HTML string.
// The response body is written to any [io.Writer]:
//
//	c := gotenberg.NewClient("http://localhost:3000")
//
//	var buf bytes.Buffer
//	ok := c.ConvertHTMLToPDF(ctx, "<h1>Hello</h1>", gotenberg.ConversionOptions{
//	    gotenberg.MarginTop: "1cm",
//	}, &buf)
//
// Every conversion is gated by a health probe. When the service is down
// ConvertHTMLToPDF returns false and sends nothing. A true result means the
// call ran to completion, not that a valid PDF was produced; see
// [Client.Convert] for a detailed result with a status code and typed errors:
//
//	res, err := c.Convert(ctx, html, opts)
//	switch {
//	case errors.Is(err, gotenberg.ErrServiceDown):
//	case errors.Is(err, gotenberg.ErrConversionFailed):
//	    log.Printf("status %d: %s", res.StatusCode(), res.Bytes())
//	}
//
// # Options
//
// Only five options reach the service: [PreferCSSPageSize], [MarginTop],
// [MarginBottom], [MarginLeft] and [MarginRight]. Any other key in
// [ConversionOptions] is dropped without error. [PageConfig] builds the
// same options from typed values:
//
//	page := &gotenberg.PageConfig{Margin: gotenberg.UniformMargin(2)}
//	ok := c.ConvertHTMLToPDF(ctx, html, page.Options(), f)
//
// # Transport faults
//
// By default a transport fault during the conversion POST is degraded to an
// empty response: nothing is written and ConvertHTMLToPDF still returns
// true. Use [WithFaultPolicy] with [ReportFault] to surface it instead.
//
// # Health
//
//	if c.Health(ctx) == gotenberg.Up { ... }
//	ok := c.CheckHealth(ctx)
package gotenberg
