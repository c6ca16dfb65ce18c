package fac

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/DanielPopoola/fac-payments-go/internal/domain"
)

const (
	DevelopmentBaseURL = "https://ecm.firstatlanticcommerce.com/PGServiceXML"
	ProductionBaseURL  = "https://marlin.firstatlanticcommerce.com/PGServiceXML"

	// DefaultThreeDSFallbackURL is FAC's test page that echoes the 3DS post
	// back. It is only substituted outside production.
	DefaultThreeDSFallbackURL = "https://ecm.firstatlanticcommerce.com/TestPages/MerchantCheckout/Parser/HttpRequestParser"

	ContentType = "application/x-www-form-urlencoded"
)

// Environment selects the FAC host.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// ParseEnvironment maps loose environment names onto an Environment.
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod", "live":
		return EnvProduction, nil
	case "development", "dev", "sandbox", "test", "":
		return EnvDevelopment, nil
	default:
		return "", fmt.Errorf("unknown environment %q", s)
	}
}

// Endpoints are resolved once when a client is built.
type Endpoints struct {
	Authorize    string
	Authorize3DS string
}

// NewEndpoints returns the endpoints for env. A non-empty baseURL overrides
// the environment host, which is how tests point the client at a stub.
func NewEndpoints(env Environment, baseURL string) (Endpoints, error) {
	base := DevelopmentBaseURL
	if env == EnvProduction {
		base = ProductionBaseURL
	}
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return Endpoints{}, fmt.Errorf("invalid gateway base url %q", baseURL)
		}
		base = baseURL
	}
	base = strings.TrimRight(base, "/")

	return Endpoints{
		Authorize:    base + "/Authorize",
		Authorize3DS: base + "/Authorize3DS",
	}, nil
}

// For returns the endpoint for a variant.
func (e Endpoints) For(v domain.Variant) (string, error) {
	switch v {
	case domain.VariantStandard:
		return e.Authorize, nil
	case domain.VariantThreeDS:
		return e.Authorize3DS, nil
	default:
		return "", domain.NewInvalidVariantError(v.String())
	}
}
