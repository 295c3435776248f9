package services

import (
	"context"

	"github.com/google/uuid"

	dbm "lookbook/internal/models/db_models"
	"lookbook/internal/models/request_models"
	"lookbook/internal/repositories"
	"lookbook/pkg/utils"
)

type FeedbackServiceInterface interface {
	SubmitFeedback(ctx context.Context, accountID uuid.UUID, request request_models.CreateFeedbackRequest) error
	ListFeedbackForPlan(ctx context.Context, accountID uuid.UUID, planID uuid.UUID) ([]dbm.OutfitFeedback, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepository
	planRepo     repositories.OutfitPlanRepository
}

func NewFeedbackService(
	feedbackRepo repositories.FeedbackRepository,
	planRepo repositories.OutfitPlanRepository,
) FeedbackServiceInterface {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		planRepo:     planRepo,
	}
}

func (f *FeedbackService) SubmitFeedback(ctx context.Context, accountID uuid.UUID, request request_models.CreateFeedbackRequest) error {
	if request.Rating < 1 || request.Rating > 5 {
		return utils.ErrInvalidInput
	}
	planID, err := uuid.Parse(request.PlanID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	plan, err := f.planRepo.FindByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil || plan.AccountID != accountID {
		return utils.ErrOutfitPlanNotFound
	}

	feedback := &dbm.OutfitFeedback{
		AccountID: accountID,
		PlanID:    planID,
		Rating:    request.Rating,
		Comment:   request.Comment,
	}
	if err := f.feedbackRepo.Insert(ctx, feedback); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (f *FeedbackService) ListFeedbackForPlan(ctx context.Context, accountID uuid.UUID, planID uuid.UUID) ([]dbm.OutfitFeedback, error) {
	plan, err := f.planRepo.FindByID(ctx, planID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil || plan.AccountID != accountID {
		return nil, utils.ErrOutfitPlanNotFound
	}
	return f.feedbackRepo.ListByPlan(ctx, planID)
}
