package formapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultEndpoint is the public form endpoint.
	DefaultEndpoint = "https://frontend-take-home.fetchrewards.com/form"
	// DefaultTimeout bounds every GET and POST.
	DefaultTimeout = 10 * time.Second
)

// Option configures a Client.
type Option func(*config)

type config struct {
	endpoint         string
	timeout          time.Duration
	httpClient       *http.Client
	userAgent        string
	validateContract bool
	contract         *Contract
	logger           *slog.Logger
}

func defaultConfig() config {
	return config{
		endpoint:         DefaultEndpoint,
		timeout:          DefaultTimeout,
		validateContract: true,
	}
}

// WithEndpoint overrides the form endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(endpoint); trimmed != "" {
			cfg.endpoint = trimmed
		}
	}
}

// WithTimeout overrides the per-request timeout. Non-positive values keep the
// default.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		if timeout > 0 {
			cfg.timeout = timeout
		}
	}
}

// WithHTTPClient uses client as the underlying transport.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(agent string) Option {
	return func(cfg *config) {
		cfg.userAgent = strings.TrimSpace(agent)
	}
}

// WithContractValidation toggles schema checks of GET payloads. Enabled by
// default.
func WithContractValidation(enabled bool) Option {
	return func(cfg *config) {
		cfg.validateContract = enabled
	}
}

// WithContract replaces the embedded contract.
func WithContract(contract *Contract) Option {
	return func(cfg *config) {
		if contract != nil {
			cfg.contract = contract
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
