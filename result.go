package gotenberg

import (
	"bytes"
	"encoding/base64"
	"io"
	"os"
)

var pdfMagic = []byte("%PDF-")

// Result holds the raw body returned by the conversion service.
//
// The body is whatever the service sent back: a PDF on success, an error
// page on failure, or nothing at all when a transport fault was degraded
// to an empty response. Use [Result.IsPDF] before trusting the content.
type Result struct {
	data       []byte
	statusCode int
	degraded   bool
}

// Bytes returns the raw response body.
func (r *Result) Bytes() []byte {
	return r.data
}

// Base64 returns the body encoded as a standard base64 string (RFC 4648).
func (r *Result) Base64() string {
	return base64.StdEncoding.EncodeToString(r.data)
}

// Reader returns an [*bytes.Reader] over the body.
func (r *Result) Reader() *bytes.Reader {
	return bytes.NewReader(r.data)
}

// WriteTo writes the full body to w. It implements [io.WriterTo].
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(r.data)
	return int64(n), err
}

// WriteToFile writes the body to the file at path, creating it if needed.
func (r *Result) WriteToFile(path string, perm os.FileMode) error {
	return os.WriteFile(path, r.data, perm)
}

// Len returns the size of the body in bytes.
func (r *Result) Len() int {
	return len(r.data)
}

// StatusCode returns the HTTP status of the conversion response,
// or 0 when no response was received.
func (r *Result) StatusCode() int {
	return r.statusCode
}

// Degraded reports whether the body was substituted with an empty one
// after a transport fault.
func (r *Result) Degraded() bool {
	return r.degraded
}

// IsPDF reports whether the body starts with the PDF magic number.
func (r *Result) IsPDF() bool {
	return bytes.HasPrefix(r.data, pdfMagic)
}
