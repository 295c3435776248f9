package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "lookbook/internal/models/db_models"
	"lookbook/internal/models/request_models"
	"lookbook/pkg/utils"
)

func TestSubmitFeedback(t *testing.T) {
	planRepo := &fakePlanRepo{}
	feedbackRepo := &fakeFeedbackRepo{}
	svc := NewFeedbackService(feedbackRepo, planRepo)

	accountID := uuid.New()
	plan := &dbm.OutfitPlan{AccountID: accountID, Kind: dbm.PlanKindSingleDay}
	require.NoError(t, planRepo.Insert(context.Background(), plan))

	t.Run("records feedback", func(t *testing.T) {
		err := svc.SubmitFeedback(context.Background(), accountID, request_models.CreateFeedbackRequest{
			PlanID: plan.ID.String(), Rating: 4, Comment: "good layering",
		})
		require.NoError(t, err)
		require.Len(t, feedbackRepo.feedbacks, 1)
		assert.Equal(t, 4, feedbackRepo.feedbacks[0].Rating)
	})

	t.Run("rating out of range", func(t *testing.T) {
		err := svc.SubmitFeedback(context.Background(), accountID, request_models.CreateFeedbackRequest{
			PlanID: plan.ID.String(), Rating: 6,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("someone else's plan", func(t *testing.T) {
		err := svc.SubmitFeedback(context.Background(), uuid.New(), request_models.CreateFeedbackRequest{
			PlanID: plan.ID.String(), Rating: 3,
		})
		assert.ErrorIs(t, err, utils.ErrOutfitPlanNotFound)
	})
}

type fakeFeedbackRepo struct {
	feedbacks []*dbm.OutfitFeedback
}

func (f *fakeFeedbackRepo) Insert(_ context.Context, feedback *dbm.OutfitFeedback) error {
	f.feedbacks = append(f.feedbacks, feedback)
	return nil
}

func (f *fakeFeedbackRepo) ListByPlan(_ context.Context, planID uuid.UUID) ([]dbm.OutfitFeedback, error) {
	var out []dbm.OutfitFeedback
	for _, fb := range f.feedbacks {
		if fb.PlanID == planID {
			out = append(out, *fb)
		}
	}
	return out, nil
}
