package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"paygate/internal/models/db_models"
)

type WebhookEventRepositoryInterface interface {
	// Seen is a cheap pre-check; it may race with a concurrent insert, so
	// callers must still treat RecordAndApply as the source of truth.
	Seen(ctx context.Context, signature string) (bool, error)

	// RecordAndApply inserts the event and, when txn is non-nil, persists the
	// mutated transaction in the same database transaction. The insert uses
	// ON CONFLICT DO NOTHING on the signature index: if another delivery with
	// the same signature got there first, created is false and the
	// transaction is left untouched.
	RecordAndApply(ctx context.Context, event *db_models.WebhookEvent, txn *db_models.Transaction) (created bool, err error)

	CountByReference(ctx context.Context, reference string) (int64, error)
}

func NewWebhookEventRepository(db *gorm.DB) WebhookEventRepositoryInterface {
	return &WebhookEventRepository{db: db}
}

type WebhookEventRepository struct {
	db *gorm.DB
}

func (r WebhookEventRepository) Seen(ctx context.Context, signature string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.WebhookEvent{}).
		Where("signature = ?", signature).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r WebhookEventRepository) RecordAndApply(ctx context.Context, event *db_models.WebhookEvent, txn *db_models.Transaction) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "signature"}},
			DoNothing: true,
		}).Create(event)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// A concurrent delivery with the same fingerprint won the race.
			return nil
		}
		created = true
		if txn == nil {
			return nil
		}
		return tx.Save(txn).Error
	})
	return created, err
}

func (r WebhookEventRepository) CountByReference(ctx context.Context, reference string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.WebhookEvent{}).
		Where("reference = ?", reference).
		Count(&count).Error
	return count, err
}
