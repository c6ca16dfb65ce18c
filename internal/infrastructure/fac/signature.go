package fac

import (
	"crypto/sha1"
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/DanielPopoola/fac-payments-go/internal/domain"
)

// SignatureMethod is sent in TransactionDetails/SignatureMethod.
const SignatureMethod = "SHA1"

// TransactionSignature returns base64(sha1(password + merchantID + acquirerID +
// orderID + amount + currencyCode)). amount must already be normalized.
func TransactionSignature(merchant domain.MerchantConfig, currency domain.CurrencyConfig, orderID, amount string) (string, error) {
	switch {
	case merchant.ProcessingPassword == "":
		return "", domain.NewMissingRequiredFieldError("processing password")
	case merchant.MerchantID == 0:
		return "", domain.NewMissingRequiredFieldError("merchant ID")
	case merchant.AcquirerID == 0:
		return "", domain.NewMissingRequiredFieldError("acquirer ID")
	case orderID == "":
		return "", domain.NewMissingRequiredFieldError("order ID")
	case amount == "":
		return "", domain.NewMissingRequiredFieldError("amount")
	case currency.Code == "":
		return "", domain.NewMissingRequiredFieldError("currency code")
	}

	var b strings.Builder
	b.WriteString(merchant.ProcessingPassword)
	b.WriteString(strconv.Itoa(merchant.MerchantID))
	b.WriteString(strconv.Itoa(merchant.AcquirerID))
	b.WriteString(orderID)
	b.WriteString(amount)
	b.WriteString(currency.Code)

	sum := sha1.Sum([]byte(b.String()))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}
