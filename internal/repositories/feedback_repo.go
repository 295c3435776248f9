package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "lookbook/internal/models/db_models"
)

type FeedbackRepository interface {
	Insert(ctx context.Context, feedback *dbm.OutfitFeedback) error
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]dbm.OutfitFeedback, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Insert(ctx context.Context, feedback *dbm.OutfitFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) ListByPlan(ctx context.Context, planID uuid.UUID) ([]dbm.OutfitFeedback, error) {
	var feedbacks []dbm.OutfitFeedback
	err := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("created_at DESC").
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}
	return feedbacks, nil
}
