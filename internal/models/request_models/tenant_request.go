package request_models

type CreateTenantRequest struct {
	Name          string  `json:"name" binding:"required,max=120"`
	PublicKey     string  `json:"public_key" binding:"required"`
	SecretKey     string  `json:"secret_key" binding:"required"`
	Environment   string  `json:"environment" binding:"omitempty,oneof=test live"`
	CallbackURL   string  `json:"callback_url" binding:"required,url"`
	WebhookSecret *string `json:"webhook_secret" binding:"omitempty"`
}
