package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "lookbook/internal/models/db_models"
)

type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*dbm.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dbm.Account, error)
	FindByExternalCustomerID(ctx context.Context, customerID string) (*dbm.Account, error)
	Insert(ctx context.Context, account *dbm.Account) error
	Update(ctx context.Context, account *dbm.Account) error
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	StampExternalCustomerID(ctx context.Context, id uuid.UUID, customerID string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	var account dbm.Account
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*dbm.Account, error) {
	var account dbm.Account
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByExternalCustomerID(ctx context.Context, customerID string) (*dbm.Account, error) {
	var account dbm.Account
	err := r.db.WithContext(ctx).Where("external_customer_id = ?", customerID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) Insert(ctx context.Context, account *dbm.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *accountRepository) Update(ctx context.Context, account *dbm.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

func (r *accountRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Account{BaseModel: dbm.BaseModel{ID: id}}).
		Update("password_hash", hash).Error
}

// StampExternalCustomerID writes the provider customer id only when the
// account does not already carry one.
func (r *accountRepository) StampExternalCustomerID(ctx context.Context, id uuid.UUID, customerID string) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Account{}).
		Where("id = ? AND (external_customer_id IS NULL OR external_customer_id = '')", id).
		Update("external_customer_id", customerID).Error
}
