package request_models

import "github.com/google/uuid"

type InitializePaymentRequest struct {
	TenantID  uuid.UUID      `json:"tenant_id" binding:"required"`
	Email     string         `json:"email" binding:"required,email"`
	Amount    int64          `json:"amount" binding:"required,gt=0"`
	Currency  string         `json:"currency" binding:"required,len=3"`
	Reference string         `json:"reference" binding:"required,max=100"`
	Metadata  map[string]any `json:"metadata" binding:"omitempty"`
}
