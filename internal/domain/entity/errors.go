package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for bad or conflicting command line input
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTransport is returned when the upstream host could not be reached
	ErrTransport = errors.New("transport error")
	// ErrHTTPStatus is returned when the upstream answered with a non-success status
	ErrHTTPStatus = errors.New("unexpected http status")
	// ErrDecode is returned when the upstream body does not have the expected shape
	ErrDecode = errors.New("decode error")

	ErrMalformedNumber = fmt.Errorf("%w: malformed number", ErrDecode)
	ErrMalformedDate   = fmt.Errorf("%w: malformed date", ErrDecode)
	ErrSchemaMismatch  = fmt.Errorf("%w: schema mismatch", ErrDecode)
)

// HTTPStatusError carries the details of a non-success upstream response
type HTTPStatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API returned error status: %s", e.Status)
	}
	return fmt.Sprintf("API returned error status: %s, body: %s", e.Status, e.Body)
}

// Unwrap lets errors.Is match ErrHTTPStatus
func (e *HTTPStatusError) Unwrap() error {
	return ErrHTTPStatus
}
