// Package domain holds the values exchanged with First Atlantic Commerce:
// merchant credentials, cards, orders and the normalized authorization result.
package domain

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// CardInfo is supplied per call and must never be persisted or logged in clear.
type CardInfo struct {
	Number string `validate:"required"`
	// Expiry is MM/YY or MMYY; FAC expects MMYY once separators are removed.
	Expiry string `validate:"required"`
	CVV    string `validate:"required,numeric,min=3,max=4"`
}

// DigitsOnly strips every non-digit character, e.g. "4111 1111" -> "41111111".
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskedNumber keeps the BIN and the last four digits.
func (c CardInfo) MaskedNumber() string {
	pan := DigitsOnly(c.Number)
	if len(pan) < 10 {
		return strings.Repeat("*", len(pan))
	}
	return pan[:6] + strings.Repeat("*", len(pan)-10) + pan[len(pan)-4:]
}

func (c CardInfo) String() string {
	return c.MaskedNumber()
}

// LogValue implements slog.LogValuer so a card passed to a logger is masked.
func (c CardInfo) LogValue() slog.Value {
	return slog.GroupValue(slog.String("number", c.MaskedNumber()))
}

// Order identifies one authorization attempt.
type Order struct {
	ID    string `validate:"required"`
	Total decimal.Decimal
}

func NewOrder(id string, total decimal.Decimal) (Order, error) {
	if strings.TrimSpace(id) == "" {
		return Order{}, NewMissingRequiredFieldError("order ID")
	}
	if total.IsNegative() {
		return Order{}, NewInvalidAmountError(total.String(), ErrInvalidAmount)
	}
	return Order{ID: id, Total: total}, nil
}
