package application

import (
	"errors"
	"fmt"
)

// ServiceError wraps the failure of one pipeline stage.
type ServiceError struct {
	Category ErrorCategory
	Message  string
	Err      error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewInvalidInputError(err error) *ServiceError {
	return &ServiceError{
		Category: CategoryInvalidInput,
		Message:  "invalid authorization request",
		Err:      err,
	}
}

func NewAmountConversionError(err error) *ServiceError {
	return &ServiceError{
		Category: CategoryInputConversion,
		Message:  "could not convert order total",
		Err:      err,
	}
}

func NewSignatureError(err error) *ServiceError {
	return &ServiceError{
		Category: CategorySignature,
		Message:  "could not generate transaction signature",
		Err:      err,
	}
}

func NewPayloadError(err error) *ServiceError {
	return &ServiceError{
		Category: CategoryInvalidInput,
		Message:  "could not build request payload",
		Err:      err,
	}
}

func NewTransportError(err error) *ServiceError {
	return &ServiceError{
		Category: CategoryTransport,
		Message:  "gateway request failed",
		Err:      err,
	}
}

func NewProtocolError(err error) *ServiceError {
	return &ServiceError{
		Category: CategoryProtocol,
		Message:  "could not read gateway response",
		Err:      err,
	}
}

func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Category: CategoryInternal,
		Message:  "an internal error occurred",
		Err:      err,
	}
}

func IsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	ok := errors.As(err, &svcErr)
	return svcErr, ok
}
