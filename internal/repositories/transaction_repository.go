package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"paygate/internal/models/db_models"
)

type TransactionRepositoryInterface interface {
	Create(ctx context.Context, txn *db_models.Transaction) error
	GetByReference(ctx context.Context, reference string) (*db_models.Transaction, error)
	Save(ctx context.Context, txn *db_models.Transaction) error
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

type TransactionRepository struct {
	db *gorm.DB
}

// Create relies on the unique index on reference to reject reuse; the
// duplicate is reported as gorm.ErrDuplicatedKey by the postgres driver.
func (r TransactionRepository) Create(ctx context.Context, txn *db_models.Transaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r TransactionRepository) GetByReference(ctx context.Context, reference string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&txn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (r TransactionRepository) Save(ctx context.Context, txn *db_models.Transaction) error {
	return r.db.WithContext(ctx).Save(txn).Error
}
