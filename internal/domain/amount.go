package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// AmountWidth is the fixed number of digits the gateway expects in <Amount>.
	AmountWidth = 12
	// MaxExponent bounds CurrencyConfig.Exponent. No ISO 4217 currency uses
	// more than four minor digits.
	MaxExponent = 6
)

// ParseOrderTotal parses a major-unit amount such as "12.30".
func ParseOrderTotal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, NewInvalidAmountError(s, ErrInvalidAmount)
	}
	return d, nil
}

// NormalizeAmount converts a major-unit amount into the gateway's zero padded
// minor-unit string. The amount is rounded to exponent places before being
// shifted, so 12.3 with exponent 2 becomes "000000001230".
//
// The shift follows the currency exponent rather than a fixed factor of 100,
// so currencies with zero or three minor digits encode correctly.
func NormalizeAmount(total decimal.Decimal, exponent int) (string, error) {
	if exponent < 0 || exponent > MaxExponent {
		return "", NewInvalidExponentError(exponent)
	}
	if total.IsNegative() {
		return "", NewInvalidAmountError(total.String(), ErrInvalidAmount)
	}

	minor := total.Round(int32(exponent)).Shift(int32(exponent)).Truncate(0)
	digits := minor.String()
	if len(digits) > AmountWidth {
		return "", NewAmountOverflowError(total.String(), AmountWidth)
	}

	return strings.Repeat("0", AmountWidth-len(digits)) + digits, nil
}
