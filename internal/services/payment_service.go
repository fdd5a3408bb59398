package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gorm.io/gorm"

	"paygate/internal/gateway"
	dbm "paygate/internal/models/db_models"
	"paygate/internal/models/request_models"
	"paygate/internal/models/response_models"
	"paygate/internal/repositories"
	"paygate/pkg/gatewaylog"
	"paygate/pkg/utils"
)

// PaymentConfig carries the gateway's own public endpoints. CallbackURL is
// where the processor sends the user's browser back after payment; it is also
// the URL the redirect-loop guard compares tenant callback_urls against.
type PaymentConfig struct {
	CallbackURL string
}

type PaymentService interface {
	InitializePayment(ctx context.Context, req request_models.InitializePaymentRequest) (*response_models.InitializePaymentResponse, error)
	ReconcileCallback(ctx context.Context, reference string) (string, error)
	GetTransaction(ctx context.Context, reference string) (*response_models.TransactionResponse, error)
}

type paymentService struct {
	transactions repositories.TransactionRepositoryInterface
	tenants      repositories.TenantRepositoryInterface
	clients      gateway.Factory
	cfg          PaymentConfig
	logger       gatewaylog.Logger
}

func NewPaymentService(
	transactions repositories.TransactionRepositoryInterface,
	tenants repositories.TenantRepositoryInterface,
	clients gateway.Factory,
	cfg PaymentConfig,
	logger gatewaylog.Logger,
) (PaymentService, error) {
	if cfg.CallbackURL == "" {
		return nil, errors.New("payment service: callback URL not configured")
	}
	return &paymentService{
		transactions: transactions,
		tenants:      tenants,
		clients:      clients,
		cfg:          cfg,
		logger:       logger,
	}, nil
}

// InitializePayment creates the pending transaction first, then asks the
// processor to start the charge. If the processor call fails the transaction
// stays pending: the webhook path may still finalize it later.
func (p *paymentService) InitializePayment(ctx context.Context, req request_models.InitializePaymentRequest) (*response_models.InitializePaymentResponse, error) {
	p.logger.Info("gateway.initialize.incoming", gatewaylog.Fields{
		"tenant_id": req.TenantID,
		"reference": req.Reference,
		"amount":    req.Amount,
		"currency":  req.Currency,
	})

	tenant, err := p.tenants.GetByTenantID(ctx, req.TenantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if tenant == nil {
		return nil, utils.ErrTenantNotFound
	}

	txn := &dbm.Transaction{
		TenantID:    tenant.TenantID,
		Reference:   req.Reference,
		AmountMinor: req.Amount,
		Currency:    strings.ToUpper(req.Currency),
		Status:      dbm.TxnStatusPending,
	}
	if err := p.transactions.Create(ctx, txn); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDuplicateReference
		}
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	p.logger.Info("gateway.transaction.created", gatewaylog.Fields{
		"tenant_id": tenant.TenantID,
		"reference": txn.Reference,
		"status":    txn.Status,
	})

	client := p.clients(tenant.SecretKey)
	result, err := client.Initialize(ctx, gateway.InitializeRequest{
		Email:       req.Email,
		Amount:      req.Amount,
		Currency:    txn.Currency,
		Reference:   req.Reference,
		CallbackURL: p.cfg.CallbackURL,
		Metadata:    req.Metadata,
	})
	if err != nil {
		// Transaction intentionally left pending.
		p.logger.Error("gateway.initialize.failed", gatewaylog.Fields{
			"tenant_id": tenant.TenantID,
			"reference": req.Reference,
			"error":     err.Error(),
		})
		return nil, err
	}

	p.logger.Info("gateway.initialize.success", gatewaylog.Fields{
		"tenant_id":                 tenant.TenantID,
		"reference":                 req.Reference,
		"authorization_url_present": result.AuthorizationURL != "",
	})

	return &response_models.InitializePaymentResponse{
		AuthorizationURL: result.AuthorizationURL,
		Reference:        req.Reference,
	}, nil
}

// ReconcileCallback handles the user's browser returning from the processor.
// It verifies the charge synchronously and always produces a redirect target
// carrying the final status, except when the tenant's callback_url would send
// the browser straight back here.
func (p *paymentService) ReconcileCallback(ctx context.Context, reference string) (string, error) {
	p.logger.Info("gateway.callback.hit", gatewaylog.Fields{
		"reference": reference,
	})

	txn, err := p.transactions.GetByReference(ctx, reference)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if txn == nil {
		return "", utils.ErrTransactionNotFound
	}

	tenant, err := p.tenants.GetByTenantID(ctx, txn.TenantID)
	if err != nil {
		return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if tenant == nil {
		return "", utils.ErrTenantNotFound
	}

	if strings.HasPrefix(tenant.CallbackURL, p.cfg.CallbackURL) {
		p.logger.Warn("gateway.callback.redirect_loop_prevented", gatewaylog.Fields{
			"tenant_id":    tenant.TenantID,
			"reference":    reference,
			"callback_url": tenant.CallbackURL,
		})
		return "", utils.ErrCallbackLoop
	}

	client := p.clients(tenant.SecretKey)
	result, err := client.Verify(ctx, reference)
	switch {
	case err != nil:
		// Transport failure or processor rejection: leave the status as it
		// is. The webhook path remains the authoritative fallback.
		p.logger.Error("gateway.callback.verify_failed", gatewaylog.Fields{
			"tenant_id": tenant.TenantID,
			"reference": reference,
			"error":     err.Error(),
		})
	case result.Succeeded():
		if transition(txn, OutcomeSuccess) {
			txn.GatewayResponse = []byte(result.Raw)
			if result.Channel != "" {
				txn.Channel = result.Channel
			}
			if err := p.transactions.Save(ctx, txn); err != nil {
				return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
			}
		}
		p.logger.Info("gateway.callback.verified", gatewaylog.Fields{
			"tenant_id":        tenant.TenantID,
			"reference":        reference,
			"processor_status": result.Status,
			"final_status":     txn.Status,
		})
	default:
		if transition(txn, OutcomeFailure) {
			txn.GatewayResponse = []byte(result.Raw)
			if err := p.transactions.Save(ctx, txn); err != nil {
				return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
			}
		}
		p.logger.Info("gateway.callback.verified", gatewaylog.Fields{
			"tenant_id":        tenant.TenantID,
			"reference":        reference,
			"processor_status": result.Status,
			"final_status":     txn.Status,
		})
	}

	redirectTo, err := buildRedirect(tenant.CallbackURL, string(txn.Status), reference)
	if err != nil {
		return "", utils.ErrCallbackLoop
	}

	p.logger.Info("gateway.callback.redirecting", gatewaylog.Fields{
		"tenant_id": tenant.TenantID,
		"reference": reference,
		"to":        tenant.CallbackURL,
	})
	return redirectTo, nil
}

func (p *paymentService) GetTransaction(ctx context.Context, reference string) (*response_models.TransactionResponse, error) {
	txn, err := p.transactions.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if txn == nil {
		return nil, utils.ErrTransactionNotFound
	}
	return &response_models.TransactionResponse{
		Reference: txn.Reference,
		Amount:    txn.AmountMinor,
		Currency:  txn.Currency,
		Status:    string(txn.Status),
		Channel:   txn.Channel,
		PaidAt:    txn.PaidAt,
	}, nil
}

// buildRedirect appends status and reference to the tenant's callback URL,
// preserving any query parameters the tenant already configured.
func buildRedirect(callbackURL, status, reference string) (string, error) {
	u, err := url.Parse(callbackURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("status", status)
	q.Set("reference", reference)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
