package services

import (
	"context"

	"github.com/google/uuid"

	"lookbook/internal/models/response_models"
	"lookbook/internal/repositories"
	"lookbook/pkg/utils"
)

type DashboardServiceInterface interface {
	GetClosetDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.ClosetDashboard, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepository
}

func NewDashboardService(dashboardRepo repositories.DashboardRepository) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

func (d *DashboardService) GetClosetDashboard(ctx context.Context, accountID uuid.UUID) (*response_models.ClosetDashboard, error) {
	total, active, err := d.dashboardRepo.CountGarments(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byCategory, err := d.dashboardRepo.CountByCategory(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	byColor, err := d.dashboardRepo.CountByColor(ctx, accountID, 10)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	plans, err := d.dashboardRepo.RecentPlans(ctx, accountID, 5)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	recent := make([]response_models.OutfitPlanRef, 0, len(plans))
	for _, plan := range plans {
		recent = append(recent, response_models.OutfitPlanRef{
			PlanID:    plan.ID.String(),
			Kind:      string(plan.Kind),
			Occasion:  plan.Occasion,
			CreatedAt: plan.CreatedAt,
		})
	}

	return &response_models.ClosetDashboard{
		TotalGarments:  total,
		ActiveGarments: active,
		ByCategory:     byCategory,
		ByColor:        byColor,
		RecentPlans:    recent,
	}, nil
}
