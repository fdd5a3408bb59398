package gateway

import (
	"context"
	"encoding/json"
)

// InitializeRequest starts a charge with the processor. CallbackURL is the
// gateway's own browser-return endpoint, not the tenant's.
type InitializeRequest struct {
	Email       string         `json:"email"`
	Amount      int64          `json:"amount"`
	Currency    string         `json:"currency"`
	Reference   string         `json:"reference"`
	CallbackURL string         `json:"callback_url"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type InitializeResult struct {
	AuthorizationURL string
	AccessCode       string
	Raw              json.RawMessage
}

type VerifyResult struct {
	Status          string
	Channel         string
	GatewayResponse string
	Raw             json.RawMessage
}

// Succeeded reports a definitive success from the processor. Anything else
// ("failed", "abandoned", "ongoing"...) is a definitive non-success; transport
// failures never reach a VerifyResult.
func (v *VerifyResult) Succeeded() bool {
	return v.Status == "success"
}

// Client talks to the payment processor on behalf of one tenant.
type Client interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeResult, error)
	Verify(ctx context.Context, reference string) (*VerifyResult, error)
}

// Factory builds a Client bound to a tenant secret key. The processor
// authenticates every call with the tenant's own credentials, so clients are
// constructed per tenant rather than shared.
type Factory func(secretKey string) Client
