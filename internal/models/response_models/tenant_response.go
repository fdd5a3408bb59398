package response_models

import "github.com/google/uuid"

type TenantResponse struct {
	TenantID    uuid.UUID `json:"tenant_id"`
	Name        string    `json:"name"`
	PublicKey   string    `json:"public_key"`
	SecretHint  string    `json:"secret_hint"` // last four characters only
	Environment string    `json:"environment"`
	CallbackURL string    `json:"callback_url"`
	CreatedAt   int64     `json:"created_at"`
}
