package fac

import (
	"encoding/xml"
	"fmt"

	"github.com/DanielPopoola/fac-payments-go/internal/domain"
)

// PayloadParams carries everything needed to render one request document.
// Amount and Signature are already normalized and computed.
type PayloadParams struct {
	Card        domain.CardInfo
	Currency    domain.CurrencyConfig
	Merchant    domain.MerchantConfig
	Variant     domain.Variant
	OrderID     string
	Amount      string
	Signature   string
	CustomData  string
	RedirectURL string
	// FallbackRedirectURL is used for 3DS when neither RedirectURL nor the
	// merchant default is set. Empty means no fallback.
	FallbackRedirectURL string
}

// BuildPayload renders the request document for p.Variant.
func BuildPayload(p PayloadParams) ([]byte, error) {
	common := RequestCommon{
		Xmlns:  gatewayNamespace,
		XmlnsI: instanceNamespace,
		CardDetails: CardDetails{
			CardCVV2:       p.Card.CVV,
			CardExpiryDate: domain.DigitsOnly(p.Card.Expiry),
			CardNumber:     domain.DigitsOnly(p.Card.Number),
			Installments:   installments,
		},
		TransactionDetails: TransactionDetails{
			AcquirerID:       p.Merchant.AcquirerID,
			Amount:           p.Amount,
			Currency:         p.Currency.Code,
			CurrencyExponent: p.Currency.Exponent,
			CustomData:       p.CustomData,
			MerchantID:       p.Merchant.MerchantID,
			OrderNumber:      p.OrderID,
			Signature:        p.Signature,
			SignatureMethod:  SignatureMethod,
			TransactionCode:  transactionCode,
		},
	}

	var doc any
	switch p.Variant {
	case domain.VariantStandard:
		doc = AuthorizeRequest{RequestCommon: common}
	case domain.VariantThreeDS:
		redirect, err := resolveRedirectURL(p)
		if err != nil {
			return nil, err
		}
		doc = Authorize3DSRequest{RequestCommon: common, MerchantResponseURL: redirect}
	default:
		return nil, domain.NewInvalidVariantError(p.Variant.String())
	}

	out, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("error marshalling xml: %w", err)
	}
	return out, nil
}

func resolveRedirectURL(p PayloadParams) (string, error) {
	switch {
	case p.RedirectURL != "":
		return p.RedirectURL, nil
	case p.Merchant.MerchantResponseURL != "":
		return p.Merchant.MerchantResponseURL, nil
	case p.FallbackRedirectURL != "":
		return p.FallbackRedirectURL, nil
	default:
		return "", domain.NewMissingRequiredFieldError("merchant response URL")
	}
}
