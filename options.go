package facpayments

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DanielPopoola/fac-payments-go/internal/application"
)

const defaultTimeout = 30 * time.Second

type config struct {
	env         Environment
	baseURL     string
	httpClient  *http.Client
	timeout     time.Duration
	logger      *slog.Logger
	fallbackURL string
	fallbackSet bool
	transport   application.Transport
}

// Option customizes the client.
type Option func(*config)

// WithEnvironment selects the FAC host. The default is [EnvDevelopment].
func WithEnvironment(env Environment) Option {
	return func(cfg *config) {
		cfg.env = env
	}
}

// WithBaseURL overrides the FAC host, for example to point at a sandbox.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

// WithHTTPClient sends requests through hc. [WithTimeout] is ignored when
// this is set.
func WithHTTPClient(hc *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = hc
	}
}

func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("facpayments: timeout must be positive")
	}
	return func(cfg *config) {
		cfg.timeout = d
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithThreeDSFallbackURL sets the 3DS redirect URL used when neither the
// request nor the merchant supplies one. An empty url disables the fallback.
func WithThreeDSFallbackURL(url string) Option {
	return func(cfg *config) {
		cfg.fallbackURL = url
		cfg.fallbackSet = true
	}
}

// withTransport replaces the HTTP transport in tests.
func withTransport(t application.Transport) Option {
	return func(cfg *config) {
		cfg.transport = t
	}
}
