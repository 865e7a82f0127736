package congress

import (
	"errors"
	"fmt"
)

// ErrMalformedPayload marks a response body that could not be parsed into the
// expected shape.
var ErrMalformedPayload = errors.New("malformed payload")

type ErrorKind string

const (
	KindNetwork   ErrorKind = "network"
	KindTimeout   ErrorKind = "timeout"
	KindStatus    ErrorKind = "status"
	KindMalformed ErrorKind = "malformed"
)

// UpstreamError is returned for every failed call to the Congress.gov API.
type UpstreamError struct {
	Kind       ErrorKind
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("congress api %s: unexpected status %d", e.Endpoint, e.StatusCode)
	default:
		return fmt.Sprintf("congress api %s: %s: %v", e.Endpoint, e.Kind, e.Err)
	}
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func malformed(endpoint string, err error) *UpstreamError {
	return &UpstreamError{
		Kind:     KindMalformed,
		Endpoint: endpoint,
		Err:      fmt.Errorf("%w: %v", ErrMalformedPayload, err),
	}
}
