package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"

	"github.com/DanielPopoola/fac-payments-go/internal/domain"
	"github.com/DanielPopoola/fac-payments-go/internal/infrastructure/fac"
)

// EnvPrefix is stripped from environment variables. FAC_MERCHANT__ACQUIRER_ID
// sets merchant.acquirer_id.
const EnvPrefix = "FAC_"

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Merchant MerchantConfig `koanf:"merchant"`
	Currency CurrencyConfig `koanf:"currency"`
	Gateway  GatewayConfig  `koanf:"gateway"`
	Logger   LoggerConfig   `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type MerchantConfig struct {
	AcquirerID         int    `koanf:"acquirer_id" validate:"required"`
	MerchantID         int    `koanf:"merchant_id" validate:"required"`
	ProcessingPassword string `koanf:"processing_password" validate:"required"`
	ResponseURL        string `koanf:"response_url" validate:"omitempty,url"`
}

type CurrencyConfig struct {
	Code     string `koanf:"code" validate:"required"`
	Exponent int    `koanf:"exponent" validate:"min=0,max=6"`
}

type GatewayConfig struct {
	BaseURL            string        `koanf:"base_url" validate:"omitempty,url"`
	Timeout            time.Duration `koanf:"timeout" validate:"required"`
	ThreeDSFallbackURL string        `koanf:"threeds_fallback_url" validate:"omitempty,url"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"primary.env":       "development",
		"currency.code":     "840",
		"currency.exponent": 2,
		"gateway.timeout":   "30s",
		"logger.level":      "info",
		"logger.format":     "text",
	}
}

// LoadConfig reads defaults, then the YAML file at path if path is not empty,
// then FAC_ environment variables. Later sources win.
func LoadConfig(path string) (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, EnvPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	if _, err := mainConfig.Environment(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

func (c *Config) Environment() (fac.Environment, error) {
	return fac.ParseEnvironment(c.Primary.Env)
}

// ThreeDSFallbackURL is the configured fallback, or the FAC test page when
// running against the development environment. Production has no fallback
// unless one is set explicitly.
func (c *Config) ThreeDSFallbackURL() string {
	if c.Gateway.ThreeDSFallbackURL != "" {
		return c.Gateway.ThreeDSFallbackURL
	}
	if env, err := c.Environment(); err == nil && env == fac.EnvDevelopment {
		return fac.DefaultThreeDSFallbackURL
	}
	return ""
}

func (m MerchantConfig) Domain() domain.MerchantConfig {
	return domain.MerchantConfig{
		AcquirerID:          m.AcquirerID,
		MerchantID:          m.MerchantID,
		ProcessingPassword:  m.ProcessingPassword,
		MerchantResponseURL: m.ResponseURL,
	}
}

func (c CurrencyConfig) Domain() domain.CurrencyConfig {
	return domain.CurrencyConfig{Code: c.Code, Exponent: c.Exponent}
}

func (m MerchantConfig) String() string {
	return fmt.Sprintf("acquirer=%d merchant=%d", m.AcquirerID, m.MerchantID)
}
