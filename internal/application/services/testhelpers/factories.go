package testhelpers

import (
	"html"

	"github.com/DanielPopoola/fac-payments-go/internal/application/services"
	"github.com/DanielPopoola/fac-payments-go/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultMerchant matches the merchant used in FAC's integration guide examples.
func DefaultMerchant() domain.MerchantConfig {
	return domain.MerchantConfig{
		AcquirerID:         1,
		MerchantID:         2,
		ProcessingPassword: "pw",
	}
}

func DefaultCurrency() domain.CurrencyConfig {
	return domain.CurrencyConfig{Code: "840", Exponent: 2}
}

// DefaultAuthorizeCommand returns a valid standard authorize command with a
// unique order ID for testing
func DefaultAuthorizeCommand() services.AuthorizeCommand {
	return services.AuthorizeCommand{
		Card: domain.CardInfo{
			Number: "4111 1111 1111 1111",
			Expiry: "12/25",
			CVV:    "123",
		},
		Order: domain.Order{
			ID:    "order-" + uuid.New().String(),
			Total: decimal.RequireFromString("10.00"),
		},
		Variant: domain.VariantStandard,
	}
}

// AuthorizeResponse renders a standard FAC response with one transaction result.
func AuthorizeResponse(reasonCode, orderNumber string) string {
	return `<AuthorizeResponse xmlns="http://schemas.firstatlanticcommerce.com/gateway/data" xmlns:i="http://www.w3.org/2001/XMLSchema-instance">
	<AcquirerId>1</AcquirerId>
	<CreditCardTransactionResults>
		<AuthCode>123456</AuthCode>
		<ReasonCode>` + reasonCode + `</ReasonCode>
		<ReasonCodeDescription>Transaction is approved.</ReasonCodeDescription>
		<ReferenceNumber>REF-` + html.EscapeString(orderNumber) + `</ReferenceNumber>
		<ResponseCode>1</ResponseCode>
	</CreditCardTransactionResults>
	<FraudControlResults></FraudControlResults>
	<MerchantId>2</MerchantId>
	<OrderNumber>` + html.EscapeString(orderNumber) + `</OrderNumber>
	<Signature>gatewaySig==</Signature>
	<SignatureMethod>SHA1</SignatureMethod>
</AuthorizeResponse>`
}

// ThreeDSResponse renders an Authorize3DS response with the given description.
func ThreeDSResponse(description, form string) string {
	return `<Authorize3DSResponse xmlns="http://schemas.firstatlanticcommerce.com/gateway/data" xmlns:i="http://www.w3.org/2001/XMLSchema-instance">
	<HTMLFormData>` + html.EscapeString(form) + `</HTMLFormData>
	<ResponseCode>0</ResponseCode>
	<ResponseCodeDescription>` + description + `</ResponseCodeDescription>
</Authorize3DSResponse>`
}
