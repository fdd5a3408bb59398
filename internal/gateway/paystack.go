package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"paygate/pkg/gatewaylog"
	"paygate/pkg/utils"
)

const DefaultBaseURL = "https://api.paystack.co"

// Config carries the transport bounds for processor calls. Timeout caps one
// attempt; transport failures are retried MaxRetries times with RetryDelay
// between attempts before surfacing utils.ErrGatewayUnreachable.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = 300 * time.Millisecond
	}
	return c
}

// NewPaystackFactory returns a Factory producing Paystack REST clients.
func NewPaystackFactory(cfg Config, logger gatewaylog.Logger) Factory {
	cfg = cfg.withDefaults()
	httpClient := &http.Client{Timeout: cfg.Timeout}
	return func(secretKey string) Client {
		return &paystackClient{
			cfg:    cfg,
			secret: secretKey,
			http:   httpClient,
			logger: logger,
		}
	}
}

type paystackClient struct {
	cfg    Config
	secret string
	http   *http.Client
	logger gatewaylog.Logger
}

// envelope is Paystack's response wrapper: {"status":bool,"message":...,"data":{...}}.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (p *paystackClient) Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error) {
	p.logger.Info("paystack.initialize.request", gatewaylog.Fields{
		"reference": req.Reference,
		"amount":    req.Amount,
		"currency":  req.Currency,
	})

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode initialize request: %w", err)
	}

	env, err := p.do(ctx, http.MethodPost, "/transaction/initialize", body)
	if err != nil {
		p.logger.Error("paystack.initialize.failed", gatewaylog.Fields{
			"reference": req.Reference,
			"error":     err.Error(),
		})
		return nil, err
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decode initialize response: %w", err)
	}

	p.logger.Info("paystack.initialize.response", gatewaylog.Fields{
		"reference":                 req.Reference,
		"authorization_url_present": data.AuthorizationURL != "",
	})

	return &InitializeResult{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Raw:              env.Data,
	}, nil
}

func (p *paystackClient) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	p.logger.Info("paystack.verify.request", gatewaylog.Fields{
		"reference": reference,
	})

	path := "/transaction/verify/" + url.PathEscape(reference)
	env, err := p.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		p.logger.Error("paystack.verify.failed", gatewaylog.Fields{
			"reference": reference,
			"error":     err.Error(),
		})
		return nil, err
	}

	var data struct {
		Status          string `json:"status"`
		Channel         string `json:"channel"`
		GatewayResponse string `json:"gateway_response"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}

	p.logger.Info("paystack.verify.response", gatewaylog.Fields{
		"reference":       reference,
		"status":          data.Status,
		"gateway_message": data.GatewayResponse,
	})

	return &VerifyResult{
		Status:          data.Status,
		Channel:         data.Channel,
		GatewayResponse: data.GatewayResponse,
		Raw:             env.Data,
	}, nil
}

// do runs one request with the bounded retry loop. Only transport-level
// failures are retried; an HTTP response, even a rejection, is final.
func (p *paystackClient) do(ctx context.Context, method, path string, body []byte) (*envelope, error) {
	var lastErr error
	for attempt := 0; attempt <= p.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", utils.ErrGatewayUnreachable, ctx.Err())
			case <-time.After(p.cfg.RetryDelay):
			}
		}

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, p.cfg.BaseURL+path, reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+p.secret)
		req.Header.Set("Content-Type", "application/json")

		resp, err := p.http.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		env, err := decodeEnvelope(resp)
		if err != nil {
			return nil, err
		}
		return env, nil
	}
	return nil, fmt.Errorf("%w: %v", utils.ErrGatewayUnreachable, lastErr)
}

func decodeEnvelope(resp *http.Response) (*envelope, error) {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read processor response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode processor response (http %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !env.Status {
		return nil, fmt.Errorf("processor rejected request (http %d): %s", resp.StatusCode, env.Message)
	}
	return &env, nil
}
