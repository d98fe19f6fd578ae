package chromium

import "errors"

var (
	// ErrClosed is returned when attempting to use a closed [Renderer].
	ErrClosed = errors.New("chromium: renderer is closed")

	// ErrInvalidLength is returned by [ParseLength] for malformed values.
	ErrInvalidLength = errors.New("chromium: invalid length")
)
