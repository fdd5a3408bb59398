package db_models

import (
	"github.com/google/uuid"
)

type TenantEnvironment string

const (
	EnvTest TenantEnvironment = "test"
	EnvLive TenantEnvironment = "live"
)

// Tenant is a client application accepting payments through the gateway.
// TenantID is the stable public identifier; SecretKey authenticates inbound
// webhooks and outbound processor calls and must never appear in logs.
type Tenant struct {
	BaseModel
	TenantID    uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name        string
	PublicKey   string
	SecretKey   string
	Environment TenantEnvironment `gorm:"size:8;default:test"`
	CallbackURL string
	// Optional dedicated webhook secret; falls back to SecretKey when unset.
	WebhookSecret *string
}

// SigningSecret returns the key used to verify inbound webhook signatures.
func (t *Tenant) SigningSecret() string {
	if t.WebhookSecret != nil && *t.WebhookSecret != "" {
		return *t.WebhookSecret
	}
	return t.SecretKey
}
