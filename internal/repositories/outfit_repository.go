package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "lookbook/internal/models/db_models"
)

type OutfitPlanRepository interface {
	Insert(ctx context.Context, plan *dbm.OutfitPlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*dbm.OutfitPlan, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]dbm.OutfitPlan, error)
}

type outfitPlanRepository struct {
	db *gorm.DB
}

func NewOutfitPlanRepository(db *gorm.DB) OutfitPlanRepository {
	return &outfitPlanRepository{db: db}
}

func (r *outfitPlanRepository) Insert(ctx context.Context, plan *dbm.OutfitPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *outfitPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*dbm.OutfitPlan, error) {
	var plan dbm.OutfitPlan
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *outfitPlanRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]dbm.OutfitPlan, error) {
	var plans []dbm.OutfitPlan
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
