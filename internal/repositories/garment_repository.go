package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "lookbook/internal/models/db_models"
)

type GarmentRepository interface {
	ListActiveByAccount(ctx context.Context, accountID uuid.UUID) ([]*dbm.Garment, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]*dbm.Garment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*dbm.Garment, error)
	CountByCategory(ctx context.Context, accountID uuid.UUID, category dbm.GarmentCategory) (int64, error)
	Insert(ctx context.Context, garment *dbm.Garment) error
	Update(ctx context.Context, garment *dbm.Garment) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

type garmentRepository struct {
	db *gorm.DB
}

func NewGarmentRepository(db *gorm.DB) GarmentRepository {
	return &garmentRepository{db: db}
}

func (r *garmentRepository) ListActiveByAccount(ctx context.Context, accountID uuid.UUID) ([]*dbm.Garment, error) {
	var garments []*dbm.Garment
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND is_active = TRUE", accountID).
		Order("created_at DESC").
		Find(&garments).Error
	if err != nil {
		return nil, err
	}
	return garments, nil
}

func (r *garmentRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]*dbm.Garment, error) {
	var garments []*dbm.Garment
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&garments).Error
	if err != nil {
		return nil, err
	}
	return garments, nil
}

func (r *garmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*dbm.Garment, error) {
	var garment dbm.Garment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&garment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &garment, nil
}

func (r *garmentRepository) CountByCategory(ctx context.Context, accountID uuid.UUID, category dbm.GarmentCategory) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.Garment{}).
		Where("account_id = ? AND category = ?", accountID, category).
		Count(&count).Error
	return count, err
}

func (r *garmentRepository) Insert(ctx context.Context, garment *dbm.Garment) error {
	return r.db.WithContext(ctx).Create(garment).Error
}

func (r *garmentRepository) Update(ctx context.Context, garment *dbm.Garment) error {
	return r.db.WithContext(ctx).Save(garment).Error
}

func (r *garmentRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&dbm.Garment{}, "id = ?", id).Error
}
