package db_models

import (
	"gorm.io/datatypes"
)

// WebhookEvent is the idempotency and audit record of one accepted webhook
// delivery. Signature is the delivery fingerprint: the unique index on it is
// what makes concurrent identical deliveries collapse into a single row.
// Rows are immutable and never deleted.
type WebhookEvent struct {
	BaseModel
	Signature string `gorm:"size:255;uniqueIndex"`
	Event     string `gorm:"size:64;index"`
	Reference string `gorm:"index"`

	// Verbatim request body as delivered, for audit/replay.
	Payload datatypes.JSON `gorm:"type:jsonb"`
}
