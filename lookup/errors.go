package lookup

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by a Service when it has no usable locus for
	// the identifier. The Resolver turns it into a nil record.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks caller mistakes, such as an unknown Method.
	ErrInvalidArgument = errors.New("invalid argument")
)

// TransportError wraps any failure talking to a service other than a plain
// 404: network errors, timeouts, unexpected statuses and undecodable bodies.
type TransportError struct {
	Service string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("error with %s API: %v", e.Service, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError records a non-2xx, non-404 response.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s for url: %s", e.Status, e.URL)
}
