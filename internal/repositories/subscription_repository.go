package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "lookbook/internal/models/db_models"
)

type SubscriptionRepository interface {
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*dbm.Subscription, error)
	FindByExternalID(ctx context.Context, externalSubscriptionID string) (*dbm.Subscription, error)
	Upsert(ctx context.Context, sub *dbm.Subscription) error
	Update(ctx context.Context, sub *dbm.Subscription) error
	UpdateStatusByExternalID(ctx context.Context, externalSubscriptionID string, status dbm.SubscriptionStatus) (int64, error)

	RecordEvent(ctx context.Context, record *dbm.BillingEventRecord) error
	EventSeen(ctx context.Context, eventID string) (bool, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*dbm.Subscription, error) {
	var sub dbm.Subscription
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) FindByExternalID(ctx context.Context, externalSubscriptionID string) (*dbm.Subscription, error) {
	var sub dbm.Subscription
	err := r.db.WithContext(ctx).
		Where("external_subscription_id = ?", externalSubscriptionID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

// Upsert creates the account's subscription row or overwrites its billing
// fields in place. Keyed by account id: one live row per account.
func (r *subscriptionRepository) Upsert(ctx context.Context, sub *dbm.Subscription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing dbm.Subscription
		err := tx.Where("account_id = ?", sub.AccountID).First(&existing).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(sub).Error
			}
			return err
		}

		sub.ID = existing.ID
		sub.CreatedAt = existing.CreatedAt
		return tx.Save(sub).Error
	})
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *dbm.Subscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

// UpdateStatusByExternalID returns the number of rows touched so callers can
// distinguish a missing row (anomaly) from a applied write.
func (r *subscriptionRepository) UpdateStatusByExternalID(ctx context.Context, externalSubscriptionID string, status dbm.SubscriptionStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&dbm.Subscription{}).
		Where("external_subscription_id = ?", externalSubscriptionID).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *subscriptionRepository) RecordEvent(ctx context.Context, record *dbm.BillingEventRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *subscriptionRepository) EventSeen(ctx context.Context, eventID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.BillingEventRecord{}).
		Where("event_id = ?", eventID).
		Count(&count).Error
	return count > 0, err
}
