package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a failure while preparing an authorization
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Domain validation errors
const (
	ErrCodeInvalidAmount        = "INVALID_AMOUNT"
	ErrCodeAmountOverflow       = "AMOUNT_OVERFLOW"
	ErrCodeInvalidExponent      = "INVALID_EXPONENT"
	ErrCodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	ErrCodeInvalidVariant       = "INVALID_VARIANT"
	ErrCodeInvalidInput         = "INVALID_INPUT"
)

var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrMissingRequiredField = errors.New("missing required field")
)

func NewInvalidAmountError(amount string, err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: fmt.Sprintf("invalid amount %q", amount),
		Err:     err,
	}
}

func NewAmountOverflowError(amount string, width int) *DomainError {
	return &DomainError{
		Code:    ErrCodeAmountOverflow,
		Message: fmt.Sprintf("amount %s does not fit in %d digits", amount, width),
		Err:     ErrInvalidAmount,
	}
}

func NewInvalidExponentError(exponent int) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidExponent,
		Message: fmt.Sprintf("invalid currency exponent %d", exponent),
		Err:     ErrInvalidAmount,
	}
}

func NewMissingRequiredFieldError(field string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMissingRequiredField,
		Message: fmt.Sprintf("%s is required", field),
		Err:     ErrMissingRequiredField,
	}
}

func NewInvalidVariantError(v string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidVariant,
		Message: fmt.Sprintf("unknown transaction variant %q", v),
	}
}

func NewInvalidInputError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidInput,
		Message: "invalid input",
		Err:     err,
	}
}

// IsErrorCode checks if an error is a DomainError with a specific code
func IsErrorCode(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}
