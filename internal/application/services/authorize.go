package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/go-playground/validator"

	"github.com/DanielPopoola/fac-payments-go/internal/application"
	"github.com/DanielPopoola/fac-payments-go/internal/domain"
	"github.com/DanielPopoola/fac-payments-go/internal/infrastructure/fac"
)

// AuthorizeConfig is fixed for the lifetime of an AuthorizeService.
type AuthorizeConfig struct {
	Merchant  domain.MerchantConfig
	Currency  domain.CurrencyConfig
	Endpoints fac.Endpoints
	// ThreeDSFallbackURL is the last-resort MerchantResponseURL.
	ThreeDSFallbackURL string
}

type AuthorizeService struct {
	cfg       AuthorizeConfig
	transport application.Transport
	validate  *validator.Validate
	logger    *slog.Logger
}

func NewAuthorizeService(cfg AuthorizeConfig, transport application.Transport, logger *slog.Logger) *AuthorizeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthorizeService{
		cfg:       cfg,
		transport: transport,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Authorize runs one authorization against FAC. It always returns a Result;
// every failure, including a panic further down, ends up in Result.Error.
func (s *AuthorizeService) Authorize(ctx context.Context, cmd AuthorizeCommand) (result domain.Result) {
	logger := s.logger.With("order_id", cmd.Order.ID, "variant", cmd.Variant.String())

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("panic recovered", "panic", rec, "stack", string(debug.Stack()))
			result = domain.Failure(application.NewInternalError(fmt.Errorf("panic: %v", rec)).Error())
		}
	}()

	if err := s.validateCommand(cmd); err != nil {
		return s.fail(logger, application.NewInvalidInputError(err))
	}

	url, err := s.cfg.Endpoints.For(cmd.Variant)
	if err != nil {
		return s.fail(logger, application.NewInvalidInputError(err))
	}

	amount, err := domain.NormalizeAmount(cmd.Order.Total, s.cfg.Currency.Exponent)
	if err != nil {
		return s.fail(logger, application.NewAmountConversionError(err))
	}

	signature, err := fac.TransactionSignature(s.cfg.Merchant, s.cfg.Currency, cmd.Order.ID, amount)
	if err != nil {
		return s.fail(logger, application.NewSignatureError(err))
	}

	payload, err := fac.BuildPayload(fac.PayloadParams{
		Card:                cmd.Card,
		Currency:            s.cfg.Currency,
		Merchant:            s.cfg.Merchant,
		Variant:             cmd.Variant,
		OrderID:             cmd.Order.ID,
		Amount:              amount,
		Signature:           signature,
		CustomData:          cmd.CustomData,
		RedirectURL:         cmd.RedirectURL,
		FallbackRedirectURL: s.cfg.ThreeDSFallbackURL,
	})
	if err != nil {
		return s.fail(logger, application.NewPayloadError(err))
	}

	logger.Debug("sending authorization", "url", url, "amount", amount, "card", cmd.Card)

	body, err := s.transport.Post(ctx, url, fac.RequestHeaders(), payload)
	if err != nil {
		return s.fail(logger, application.NewTransportError(err))
	}

	result, err = fac.ParseResponse(body, cmd.Variant)
	if err != nil {
		return s.fail(logger, application.NewProtocolError(err))
	}

	if !result.Success {
		logger.Warn("authorization not approved",
			"category", application.CategoryDeclined,
			"error", result.Error,
			"reason_code", reasonCode(result),
		)
		return result
	}

	logger.Info("authorization approved", "reason_code", reasonCode(result))
	return result
}

func (s *AuthorizeService) validateCommand(cmd AuthorizeCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return err
	}
	if domain.DigitsOnly(cmd.Card.Number) == "" {
		return domain.NewMissingRequiredFieldError("card number")
	}
	if domain.DigitsOnly(cmd.Card.Expiry) == "" {
		return domain.NewMissingRequiredFieldError("card expiry")
	}
	return nil
}

func (s *AuthorizeService) fail(logger *slog.Logger, err error) domain.Result {
	logger.Error("authorization failed",
		"category", application.CategorizeError(err),
		"error", err,
	)
	return domain.Failure(err.Error())
}

func reasonCode(r domain.Result) string {
	if r.Meta == nil {
		return ""
	}
	return r.Meta.ReasonCode
}
