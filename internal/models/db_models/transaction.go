package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending    TransactionStatus = "pending"
	TxnStatusSuccessful TransactionStatus = "successful"
	TxnStatusFailed     TransactionStatus = "failed"
)

// Transaction is the unit of reconciliation. Reference is caller-supplied,
// globally unique and immutable; it correlates the initialize, callback and
// webhook paths. Rows are never deleted (audit trail).
type Transaction struct {
	BaseModel
	TenantID  uuid.UUID `gorm:"type:uuid;index:idx_tenant_reference"`
	Reference string    `gorm:"uniqueIndex;index:idx_tenant_reference"`

	AmountMinor int64             // minor units, e.g. 500000 = NGN 5000.00
	Currency    string            `gorm:"size:3;default:NGN"`
	Status      TransactionStatus `gorm:"size:16;index;default:pending"`

	Channel string // card, bank, ussd... as reported by the processor
	PaidAt  *int64 // unix seconds, set once on entering successful

	// Raw processor payloads attached on transition, for audit/replay.
	GatewayResponse datatypes.JSON `gorm:"type:jsonb"`
	RawPayload      datatypes.JSON `gorm:"type:jsonb"`

	Tenant Tenant `gorm:"foreignKey:TenantID;references:TenantID"`
}

// Finalized reports whether the transaction reached its terminal state.
// A successful transaction is sticky: no later notification may regress it.
func (t *Transaction) Finalized() bool {
	return t.Status == TxnStatusSuccessful
}
