package services

import "github.com/DanielPopoola/fac-payments-go/internal/domain"

type AuthorizeCommand struct {
	Card    domain.CardInfo
	Order   domain.Order
	Variant domain.Variant
	// CustomData is echoed back by FAC untouched.
	CustomData string `validate:"max=255"`
	// RedirectURL overrides the merchant's 3DS response URL for this call.
	RedirectURL string `validate:"omitempty,url"`
}
