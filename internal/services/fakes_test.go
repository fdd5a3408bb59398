package services

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"paygate/internal/gateway"
	dbm "paygate/internal/models/db_models"
)

// In-memory stand-ins for the repositories. The event fake mirrors the
// storage guarantee the real one gets from the unique signature index: the
// insert-or-skip plus the transaction save happen under one lock.

type fakeTransactionRepo struct {
	mu    sync.Mutex
	byRef map[string]*dbm.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{byRef: make(map[string]*dbm.Transaction)}
}

func cloneTxn(txn *dbm.Transaction) *dbm.Transaction {
	clone := *txn
	if txn.PaidAt != nil {
		paidAt := *txn.PaidAt
		clone.PaidAt = &paidAt
	}
	return &clone
}

func (f *fakeTransactionRepo) Create(_ context.Context, txn *dbm.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byRef[txn.Reference]; ok {
		return gorm.ErrDuplicatedKey
	}
	f.byRef[txn.Reference] = cloneTxn(txn)
	return nil
}

func (f *fakeTransactionRepo) GetByReference(_ context.Context, reference string) (*dbm.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	txn, ok := f.byRef[reference]
	if !ok {
		return nil, nil
	}
	return cloneTxn(txn), nil
}

func (f *fakeTransactionRepo) Save(_ context.Context, txn *dbm.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byRef[txn.Reference] = cloneTxn(txn)
	return nil
}

func (f *fakeTransactionRepo) get(reference string) *dbm.Transaction {
	txn, _ := f.GetByReference(context.Background(), reference)
	return txn
}

type fakeTenantRepo struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*dbm.Tenant
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{byID: make(map[uuid.UUID]*dbm.Tenant)}
}

func (f *fakeTenantRepo) Create(_ context.Context, tenant *dbm.Tenant) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *tenant
	f.byID[tenant.TenantID] = &clone
	return nil
}

func (f *fakeTenantRepo) GetByTenantID(_ context.Context, tenantID uuid.UUID) (*dbm.Tenant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tenant, ok := f.byID[tenantID]
	if !ok {
		return nil, nil
	}
	clone := *tenant
	return &clone, nil
}

type fakeWebhookEventRepo struct {
	mu    sync.Mutex
	bySig map[string]*dbm.WebhookEvent
	txns  *fakeTransactionRepo
}

func newFakeWebhookEventRepo(txns *fakeTransactionRepo) *fakeWebhookEventRepo {
	return &fakeWebhookEventRepo{bySig: make(map[string]*dbm.WebhookEvent), txns: txns}
}

func (f *fakeWebhookEventRepo) Seen(_ context.Context, signature string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.bySig[signature]
	return ok, nil
}

func (f *fakeWebhookEventRepo) RecordAndApply(ctx context.Context, event *dbm.WebhookEvent, txn *dbm.Transaction) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.bySig[event.Signature]; ok {
		return false, nil
	}
	clone := *event
	f.bySig[event.Signature] = &clone
	if txn != nil {
		f.txns.mu.Lock()
		f.txns.byRef[txn.Reference] = cloneTxn(txn)
		f.txns.mu.Unlock()
	}
	return true, nil
}

func (f *fakeWebhookEventRepo) CountByReference(_ context.Context, reference string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, event := range f.bySig {
		if event.Reference == reference {
			count++
		}
	}
	return count, nil
}

func (f *fakeWebhookEventRepo) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.bySig)
}

// fakeGatewayClient scripts the processor responses for the payment service
// tests.

type fakeGatewayClient struct {
	mu sync.Mutex

	initResult *gateway.InitializeResult
	initErr    error

	verifyResult *gateway.VerifyResult
	verifyErr    error

	initCalls   []gateway.InitializeRequest
	verifyCalls []string
}

func (f *fakeGatewayClient) Initialize(_ context.Context, req gateway.InitializeRequest) (*gateway.InitializeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.initCalls = append(f.initCalls, req)
	return f.initResult, f.initErr
}

func (f *fakeGatewayClient) Verify(_ context.Context, reference string) (*gateway.VerifyResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verifyCalls = append(f.verifyCalls, reference)
	return f.verifyResult, f.verifyErr
}

func (f *fakeGatewayClient) factory() gateway.Factory {
	return func(string) gateway.Client { return f }
}
