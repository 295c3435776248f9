package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "lookbook/internal/models/db_models"
	resp "lookbook/internal/models/response_models"
)

type DashboardRepository interface {
	CountGarments(ctx context.Context, accountID uuid.UUID) (total int64, active int64, err error)
	CountByCategory(ctx context.Context, accountID uuid.UUID) ([]resp.CategoryCount, error)
	CountByColor(ctx context.Context, accountID uuid.UUID, limit int) ([]resp.ColorCount, error)
	RecentPlans(ctx context.Context, accountID uuid.UUID, limit int) ([]dbm.OutfitPlan, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

func (r *dashboardRepository) CountGarments(ctx context.Context, accountID uuid.UUID) (int64, int64, error) {
	var total, active int64
	if err := r.db.WithContext(ctx).
		Model(&dbm.Garment{}).
		Where("account_id = ?", accountID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := r.db.WithContext(ctx).
		Model(&dbm.Garment{}).
		Where("account_id = ? AND is_active = TRUE", accountID).
		Count(&active).Error; err != nil {
		return 0, 0, err
	}
	return total, active, nil
}

func (r *dashboardRepository) CountByCategory(ctx context.Context, accountID uuid.UUID) ([]resp.CategoryCount, error) {
	var counts []resp.CategoryCount
	err := r.db.WithContext(ctx).
		Model(&dbm.Garment{}).
		Select("category, COUNT(*) as count").
		Where("account_id = ?", accountID).
		Group("category").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *dashboardRepository) CountByColor(ctx context.Context, accountID uuid.UUID, limit int) ([]resp.ColorCount, error) {
	if limit <= 0 {
		limit = 10
	}
	var counts []resp.ColorCount
	err := r.db.WithContext(ctx).
		Model(&dbm.Garment{}).
		Select("color, COUNT(*) as count").
		Where("account_id = ? AND color <> ''", accountID).
		Group("color").
		Order("count DESC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *dashboardRepository) RecentPlans(ctx context.Context, accountID uuid.UUID, limit int) ([]dbm.OutfitPlan, error) {
	if limit <= 0 {
		limit = 5
	}
	var plans []dbm.OutfitPlan
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
