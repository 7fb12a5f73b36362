package formapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/goliatone/go-signupform/internal/logger"
	"github.com/goliatone/go-signupform/pkg/model"
)

// SubmitResult reports how the endpoint answered a POST.
type SubmitResult struct {
	StatusCode int
	Body       []byte
}

// Created reports whether the endpoint accepted the record.
func (r SubmitResult) Created() bool {
	return r.StatusCode == http.StatusCreated
}

// Client performs the GET and POST against the form endpoint.
type Client struct {
	http             *resty.Client
	endpoint         string
	timeout          time.Duration
	contract         *Contract
	validateContract bool
	logger           *slog.Logger
}

// New builds a Client. The embedded contract is loaded unless contract
// validation is disabled or a contract is supplied.
func New(opts ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.validateContract && cfg.contract == nil {
		contract, err := DefaultContract()
		if err != nil {
			return nil, err
		}
		cfg.contract = contract
	}
	if cfg.logger == nil {
		cfg.logger = logger.Discard()
	}

	var rc *resty.Client
	if cfg.httpClient != nil {
		rc = resty.NewWithClient(cfg.httpClient)
	} else {
		rc = resty.New()
	}
	rc.SetTimeout(cfg.timeout)
	rc.SetHeader("Accept", "application/json")
	if cfg.userAgent != "" {
		rc.SetHeader("User-Agent", cfg.userAgent)
	}

	return &Client{
		http:             rc,
		endpoint:         cfg.endpoint,
		timeout:          cfg.timeout,
		contract:         cfg.contract,
		validateContract: cfg.validateContract,
		logger:           cfg.logger,
	}, nil
}

// Endpoint returns the URL the client talks to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchPayload performs the GET and decodes the body by key.
func (c *Client) FetchPayload(ctx context.Context) (Payload, error) {
	ctx, cancel := c.requestContext(ctx)
	defer cancel()

	started := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.endpoint)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: GET %s: %w", ErrNetwork, c.endpoint, err)
	}
	c.logger.Debug("form options fetched",
		"status", resp.StatusCode(),
		"bytes", len(resp.Body()),
		"elapsed", time.Since(started),
	)

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return Payload{}, StatusError{Code: resp.StatusCode()}
	}

	payload, err := DecodePayload(resp.Body())
	if err != nil {
		return Payload{}, err
	}
	if c.validateContract {
		if err := c.contract.ValidateOptions(payload.generic()); err != nil {
			return Payload{}, err
		}
	}
	return payload, nil
}

// FetchChoices performs the GET and normalizes both option lists.
func (c *Client) FetchChoices(ctx context.Context) (model.Choices, error) {
	payload, err := c.FetchPayload(ctx)
	if err != nil {
		return model.Choices{}, err
	}
	return payload.Choices()
}

// Submit posts record as JSON. Any HTTP answer is returned as a SubmitResult;
// only transport failures and timeouts produce an error.
func (c *Client) Submit(ctx context.Context, record model.FormRecord) (SubmitResult, error) {
	body, err := json.Marshal(record)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("formapi: encode record: %w", err)
	}

	ctx, cancel := c.requestContext(ctx)
	defer cancel()

	started := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(c.endpoint)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("%w: POST %s: %w", ErrNetwork, c.endpoint, err)
	}
	c.logger.Debug("form submitted",
		"status", resp.StatusCode(),
		"elapsed", time.Since(started),
	)

	return SubmitResult{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}
