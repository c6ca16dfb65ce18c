package domain

// MerchantConfig holds the credentials FAC issues to a merchant.
type MerchantConfig struct {
	AcquirerID         int    `validate:"required"`
	MerchantID         int    `validate:"required"`
	ProcessingPassword string `validate:"required"`
	// MerchantResponseURL is where the cardholder is sent back after 3DS.
	MerchantResponseURL string `validate:"omitempty,url"`
}

// CurrencyConfig describes the currency every transaction is charged in.
type CurrencyConfig struct {
	// Code is the ISO 4217 code FAC was provisioned with, e.g. "840" for USD.
	Code     string `validate:"required"`
	Exponent int    `validate:"min=0,max=6"`
}

// Variant selects which FAC authorization operation is used.
type Variant int

const (
	VariantStandard Variant = iota
	VariantThreeDS
)

func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "standard"
	case VariantThreeDS:
		return "3ds"
	default:
		return "unknown"
	}
}

// Valid reports whether v is one of the supported variants.
func (v Variant) Valid() bool {
	return v == VariantStandard || v == VariantThreeDS
}

// ParseVariant accepts "standard" or "3ds".
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "standard", "":
		return VariantStandard, nil
	case "3ds", "threeds":
		return VariantThreeDS, nil
	default:
		return Variant(-1), NewInvalidVariantError(s)
	}
}
