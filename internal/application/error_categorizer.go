package application

import (
	"context"
	"errors"

	"github.com/DanielPopoola/fac-payments-go/internal/domain"
	"github.com/DanielPopoola/fac-payments-go/internal/infrastructure/fac"
)

// ErrorCategory names the stage an authorization failed in. It is only used
// for logging; callers see the Result error string.
type ErrorCategory string

const (
	CategoryInvalidInput    ErrorCategory = "INVALID_INPUT"
	CategoryInputConversion ErrorCategory = "INPUT_CONVERSION"
	CategorySignature       ErrorCategory = "SIGNATURE"
	CategoryTransport       ErrorCategory = "TRANSPORT"
	CategoryProtocol        ErrorCategory = "PROTOCOL"
	CategoryDeclined        ErrorCategory = "DECLINED"
	CategoryInternal        ErrorCategory = "INTERNAL"
)

// CategorizeError determines the error category for logging purposes
func CategorizeError(err error) ErrorCategory {
	if err == nil {
		return ""
	}

	if svcErr, ok := IsServiceError(err); ok {
		return svcErr.Category
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return CategoryTransport
	}

	if _, ok := fac.IsTransportError(err); ok {
		return CategoryTransport
	}

	if _, ok := fac.IsProtocolError(err); ok {
		return CategoryProtocol
	}

	switch {
	case domain.IsErrorCode(err, domain.ErrCodeInvalidAmount),
		domain.IsErrorCode(err, domain.ErrCodeAmountOverflow),
		domain.IsErrorCode(err, domain.ErrCodeInvalidExponent):
		return CategoryInputConversion
	case domain.IsErrorCode(err, domain.ErrCodeMissingRequiredField),
		domain.IsErrorCode(err, domain.ErrCodeInvalidVariant),
		domain.IsErrorCode(err, domain.ErrCodeInvalidInput):
		return CategoryInvalidInput
	}

	return CategoryInternal
}
