package services

import (
	"time"

	dbm "paygate/internal/models/db_models"
)

// Outcome is the reconciliation signal extracted from a processor report,
// whether it arrived over the webhook or the callback verify path.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

// NextStatus applies the transition rules and reports whether a write is
// needed. The asymmetry is deliberate and load-bearing: successful is sticky
// (a paid transaction is never flipped back by a late or retried failure
// report), while failed may still be overridden by a later authoritative
// success, covering the case where callback verification failed transiently
// but the webhook later confirms payment.
func NextStatus(current dbm.TransactionStatus, outcome Outcome) (dbm.TransactionStatus, bool) {
	if current == dbm.TxnStatusSuccessful {
		return current, false
	}
	switch outcome {
	case OutcomeSuccess:
		return dbm.TxnStatusSuccessful, true
	case OutcomeFailure:
		if current == dbm.TxnStatusFailed {
			return current, false
		}
		return dbm.TxnStatusFailed, true
	default:
		return current, false
	}
}

// transition mutates txn per NextStatus. PaidAt is set exactly once, on the
// transition into successful.
func transition(txn *dbm.Transaction, outcome Outcome) bool {
	next, apply := NextStatus(txn.Status, outcome)
	if !apply {
		return false
	}
	txn.Status = next
	if next == dbm.TxnStatusSuccessful && txn.PaidAt == nil {
		now := time.Now().Unix()
		txn.PaidAt = &now
	}
	return true
}
