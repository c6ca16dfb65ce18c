package facpayments

import (
	"context"
	"fmt"

	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"

	"github.com/DanielPopoola/fac-payments-go/internal/application/services"
	"github.com/DanielPopoola/fac-payments-go/internal/domain"
	"github.com/DanielPopoola/fac-payments-go/internal/infrastructure/fac"
)

type (
	MerchantConfig    = domain.MerchantConfig
	CurrencyConfig    = domain.CurrencyConfig
	CardInfo          = domain.CardInfo
	Variant           = domain.Variant
	Result            = domain.Result
	Meta              = domain.Meta
	AuthorizationData = domain.AuthorizationData
	ThreeDSForm       = domain.ThreeDSForm
	Environment       = fac.Environment
)

const (
	VariantStandard = domain.VariantStandard
	VariantThreeDS  = domain.VariantThreeDS

	EnvDevelopment = fac.EnvDevelopment
	EnvProduction  = fac.EnvProduction
)

// AuthorizeRequest is one authorization attempt.
type AuthorizeRequest struct {
	Card    CardInfo
	OrderID string
	// Total is in major units, e.g. 10.00 for ten dollars.
	Total   decimal.Decimal
	Variant Variant
	// CustomData is optional and echoed back by FAC.
	CustomData string
	// RedirectURL overrides MerchantConfig.MerchantResponseURL for 3DS.
	RedirectURL string
}

// Client authorizes card transactions for a single merchant and currency.
type Client struct {
	service *services.AuthorizeService
}

// NewClient builds a client. Endpoints are resolved here and never change
// afterwards. Merchant and currency configs are validated against their
// struct tags.
func NewClient(merchant MerchantConfig, currency CurrencyConfig, opts ...Option) (*Client, error) {
	validate := validator.New()
	if err := validate.Struct(merchant); err != nil {
		return nil, fmt.Errorf("invalid merchant config: %w", err)
	}
	if err := validate.Struct(currency); err != nil {
		return nil, fmt.Errorf("invalid currency config: %w", err)
	}

	cfg := config{
		env:     EnvDevelopment,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	endpoints, err := fac.NewEndpoints(cfg.env, cfg.baseURL)
	if err != nil {
		return nil, err
	}

	if !cfg.fallbackSet && cfg.env != EnvProduction {
		cfg.fallbackURL = fac.DefaultThreeDSFallbackURL
	}

	transport := cfg.transport
	if transport == nil {
		transport = fac.NewHTTPTransport(cfg.httpClient, cfg.timeout)
	}

	return &Client{
		service: services.NewAuthorizeService(services.AuthorizeConfig{
			Merchant:           merchant,
			Currency:           currency,
			Endpoints:          endpoints,
			ThreeDSFallbackURL: cfg.fallbackURL,
		}, transport, cfg.logger),
	}, nil
}

// AuthorizeTransaction sends one authorization to FAC. It never panics and
// never returns an error; check Result.Success.
func (c *Client) AuthorizeTransaction(ctx context.Context, req AuthorizeRequest) Result {
	return c.service.Authorize(ctx, services.AuthorizeCommand{
		Card: req.Card,
		Order: domain.Order{
			ID:    req.OrderID,
			Total: req.Total,
		},
		Variant:     req.Variant,
		CustomData:  req.CustomData,
		RedirectURL: req.RedirectURL,
	})
}
