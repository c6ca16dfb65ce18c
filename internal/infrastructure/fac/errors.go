package fac

import (
	"errors"
	"fmt"
)

// TransportError is returned when FAC answers with a non-2xx status.
type TransportError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway returned status %d: %s", e.StatusCode, e.Body)
}

func IsTransportError(err error) (*TransportError, bool) {
	var transportErr *TransportError
	ok := errors.As(err, &transportErr)
	return transportErr, ok
}

// ProtocolError means the response could not be read as the expected document.
type ProtocolError struct {
	Message string
	Err     error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

func IsProtocolError(err error) (*ProtocolError, bool) {
	var protocolErr *ProtocolError
	ok := errors.As(err, &protocolErr)
	return protocolErr, ok
}

func newMissingElementError(path string) *ProtocolError {
	return &ProtocolError{Message: fmt.Sprintf("response is missing element %s", path)}
}
