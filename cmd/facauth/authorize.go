package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	facpayments "github.com/DanielPopoola/fac-payments-go"
	"github.com/DanielPopoola/fac-payments-go/internal/config"
	"github.com/DanielPopoola/fac-payments-go/internal/domain"
)

var errNotApproved = errors.New("transaction was not approved")

type authorizeFlags struct {
	configPath  string
	orderID     string
	total       string
	card        string
	expiry      string
	cvv         string
	variant     string
	customData  string
	redirectURL string
}

func newAuthorizeCmd() *cobra.Command {
	var flags authorizeFlags

	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Run one authorization and print the result as JSON",
		Long: `Run one authorization and print the result envelope as JSON.

Merchant credentials come from FAC_ environment variables, a .env file or
the YAML file given with --config.

Examples:
  facauth authorize --total 10.00 --card 4111111111111111 --expiry 1225 --cvv 123
  facauth authorize --variant 3ds --redirect-url https://shop.example/3ds --total 25 ...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuthorize(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "path to a YAML config file")
	f.StringVar(&flags.orderID, "order-id", "", "order number sent to FAC (default: random uuid)")
	f.StringVar(&flags.total, "total", "", "order total in major units, e.g. 10.00")
	f.StringVar(&flags.card, "card", "", "card number")
	f.StringVar(&flags.expiry, "expiry", "", "card expiry as MMYY")
	f.StringVar(&flags.cvv, "cvv", "", "card security code")
	f.StringVar(&flags.variant, "variant", "standard", "standard or 3ds")
	f.StringVar(&flags.customData, "custom-data", "", "free text echoed back by FAC")
	f.StringVar(&flags.redirectURL, "redirect-url", "", "3DS merchant response URL for this call")

	for _, name := range []string{"total", "card", "expiry", "cvv"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runAuthorize(cmd *cobra.Command, flags authorizeFlags) error {
	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	total, err := domain.ParseOrderTotal(flags.total)
	if err != nil {
		return err
	}
	variant, err := domain.ParseVariant(flags.variant)
	if err != nil {
		return err
	}
	env, err := cfg.Environment()
	if err != nil {
		return err
	}

	orderID := flags.orderID
	if orderID == "" {
		orderID = uuid.NewString()
	}

	client, err := facpayments.NewClient(cfg.Merchant.Domain(), cfg.Currency.Domain(),
		facpayments.WithEnvironment(env),
		facpayments.WithBaseURL(cfg.Gateway.BaseURL),
		facpayments.WithTimeout(cfg.Gateway.Timeout),
		facpayments.WithLogger(logger),
		facpayments.WithThreeDSFallbackURL(cfg.ThreeDSFallbackURL()),
	)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	logger.Info("authorizing transaction",
		"order_id", orderID,
		"variant", variant.String(),
		"merchant", cfg.Merchant.String(),
	)

	res := client.AuthorizeTransaction(cmd.Context(), facpayments.AuthorizeRequest{
		Card: facpayments.CardInfo{
			Number: flags.card,
			Expiry: flags.expiry,
			CVV:    flags.cvv,
		},
		OrderID:     orderID,
		Total:       total,
		Variant:     variant,
		CustomData:  flags.customData,
		RedirectURL: flags.redirectURL,
	})

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))

	if !res.Success {
		return errNotApproved
	}
	return nil
}
