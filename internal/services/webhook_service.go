package services

import (
	"context"
	"encoding/json"
	"fmt"

	dbm "paygate/internal/models/db_models"
	"paygate/internal/repositories"
	"paygate/pkg/gatewaylog"
	mem "paygate/pkg/memcache"
	"paygate/pkg/utils"
)

// AckDecision tells the HTTP layer how a delivery was resolved. Everything
// except the signature errors maps to a 200 so the sender stops retrying.
type AckDecision int

const (
	AckProcessed    AckDecision = iota // event recorded, transition applied
	AckDuplicate                       // fingerprint already recorded
	AckUnreconciled                    // acknowledged, nothing attributable
	AckIgnored                         // event recorded, no state change
)

func (d AckDecision) String() string {
	switch d {
	case AckProcessed:
		return "processed"
	case AckDuplicate:
		return "duplicate"
	case AckUnreconciled:
		return "unreconciled"
	case AckIgnored:
		return "ignored"
	default:
		return "unknown"
	}
}

type WebhookService interface {
	ProcessNotification(ctx context.Context, rawBody []byte, signature string) (AckDecision, error)
}

type webhookService struct {
	transactions repositories.TransactionRepositoryInterface
	tenants      repositories.TenantRepositoryInterface
	events       repositories.WebhookEventRepositoryInterface
	seen         *mem.SeenSignatures
	logger       gatewaylog.Logger
}

func NewWebhookService(
	transactions repositories.TransactionRepositoryInterface,
	tenants repositories.TenantRepositoryInterface,
	events repositories.WebhookEventRepositoryInterface,
	seen *mem.SeenSignatures,
	logger gatewaylog.Logger,
) WebhookService {
	return &webhookService{
		transactions: transactions,
		tenants:      tenants,
		events:       events,
		seen:         seen,
		logger:       logger,
	}
}

// ProcessNotification reconciles one webhook delivery end-to-end. The dedupe
// check runs before signature verification: a duplicate is cheap to detect,
// and answering duplicates and invalid signatures from the same code path
// means a prober cannot tell the two apart. Replaying the same (body,
// signature) pair any number of times leaves the transaction in the state the
// first successful application produced.
func (w *webhookService) ProcessNotification(ctx context.Context, rawBody []byte, signature string) (AckDecision, error) {
	if signature == "" {
		w.logger.Warn("gateway.webhook.missing_signature", nil)
		return 0, utils.ErrMissingSignature
	}

	if w.seen.Contains(signature) {
		w.logger.Info("gateway.webhook.duplicate_ignored", gatewaylog.Fields{
			"signature_prefix": sigPrefix(signature),
			"source":           "cache",
		})
		return AckDuplicate, nil
	}

	recorded, err := w.events.Seen(ctx, signature)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if recorded {
		w.seen.Add(signature)
		w.logger.Info("gateway.webhook.duplicate_ignored", gatewaylog.Fields{
			"signature_prefix": sigPrefix(signature),
		})
		return AckDuplicate, nil
	}

	notif, err := ParseNotification(rawBody)
	if err != nil {
		// Unparseable bodies can never be attributed to a tenant. Acknowledge
		// so the sender stops retrying, record nothing.
		w.logger.Warn("gateway.webhook.invalid_json", gatewaylog.Fields{
			"signature_prefix": sigPrefix(signature),
		})
		return AckUnreconciled, nil
	}

	w.logger.Info("gateway.webhook.parsed", gatewaylog.Fields{
		"event":     notif.Event,
		"reference": notif.Reference,
	})

	if notif.Reference == "" {
		w.logger.Warn("gateway.webhook.missing_reference", gatewaylog.Fields{
			"event": notif.Event,
		})
		return AckUnreconciled, nil
	}

	txn, err := w.transactions.GetByReference(ctx, notif.Reference)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if txn == nil {
		// The webhook may race ahead of the transaction's creation, or point
		// at a foreign transaction. Either way: acknowledge, create nothing.
		w.logger.Warn("gateway.webhook.transaction_not_found", gatewaylog.Fields{
			"reference": notif.Reference,
			"event":     notif.Event,
		})
		return AckUnreconciled, nil
	}

	tenant, err := w.tenants.GetByTenantID(ctx, txn.TenantID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if tenant == nil {
		w.logger.Warn("gateway.webhook.tenant_not_found", gatewaylog.Fields{
			"tenant_id": txn.TenantID,
			"reference": notif.Reference,
		})
		return AckUnreconciled, nil
	}

	if !utils.VerifySignature(rawBody, signature, tenant.SigningSecret()) {
		// An unverified delivery carries no trust: it must not consume the
		// idempotency slot, so no WebhookEvent is written here.
		w.logger.Warn("gateway.webhook.signature_invalid", gatewaylog.Fields{
			"tenant_id":        tenant.TenantID,
			"reference":        notif.Reference,
			"event":            notif.Event,
			"signature_prefix": sigPrefix(signature),
		})
		return 0, utils.ErrInvalidSignature
	}

	w.logger.Info("gateway.webhook.signature_valid", gatewaylog.Fields{
		"tenant_id": tenant.TenantID,
		"reference": notif.Reference,
		"event":     notif.Event,
	})

	event := &dbm.WebhookEvent{
		Signature: signature,
		Event:     notif.Event,
		Reference: notif.Reference,
		Payload:   []byte(notif.Raw),
	}

	decision := AckIgnored
	var mutated *dbm.Transaction
	switch {
	case notif.Outcome == OutcomeUnknown:
		w.logger.Info("gateway.webhook.event_ignored", gatewaylog.Fields{
			"tenant_id": tenant.TenantID,
			"reference": notif.Reference,
			"event":     notif.Event,
		})
	case transition(txn, notif.Outcome):
		txn.RawPayload = []byte(notif.Raw)
		if notif.Channel != "" {
			txn.Channel = notif.Channel
		}
		if notif.GatewayResponse != "" {
			if encoded, err := json.Marshal(notif.GatewayResponse); err == nil {
				txn.GatewayResponse = encoded
			}
		}
		mutated = txn
		decision = AckProcessed
	default:
		// Sticky success, or a repeat of the current terminal failure. The
		// delivery is still recorded for audit; state stays put.
		w.logger.Info("gateway.webhook.transaction_already_finalized", gatewaylog.Fields{
			"tenant_id": tenant.TenantID,
			"reference": notif.Reference,
			"event":     notif.Event,
			"status":    txn.Status,
		})
	}

	created, err := w.events.RecordAndApply(ctx, event, mutated)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if !created {
		// Lost the race against a concurrent identical delivery.
		w.logger.Info("gateway.webhook.duplicate_ignored", gatewaylog.Fields{
			"signature_prefix": sigPrefix(signature),
			"source":           "insert_conflict",
		})
		w.seen.Add(signature)
		return AckDuplicate, nil
	}
	w.seen.Add(signature)

	if decision == AckProcessed {
		w.logger.Info("gateway.webhook.transaction_updated", gatewaylog.Fields{
			"tenant_id": tenant.TenantID,
			"reference": notif.Reference,
			"event":     notif.Event,
			"status":    txn.Status,
		})
	}
	w.logger.Info("gateway.webhook.acknowledged", gatewaylog.Fields{
		"tenant_id": tenant.TenantID,
		"reference": notif.Reference,
		"event":     notif.Event,
		"decision":  decision.String(),
	})
	return decision, nil
}

// sigPrefix keeps log lines greppable without reproducing a full fingerprint.
func sigPrefix(signature string) string {
	if len(signature) <= 12 {
		return signature
	}
	return signature[:12] + "..."
}
