package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	dbm "lookbook/internal/models/db_models"
	"lookbook/internal/models/response_models"
	"lookbook/internal/repositories"
	"lookbook/pkg/utils"
)

// TrialLengthDays is the implicit trial granted from signup when no
// subscription row exists yet.
const TrialLengthDays = 15

// TrialGarmentQuota limits items per wardrobe category during trial.
const TrialGarmentQuota = 5

// QuotaUnlimited marks the paid tier's unbounded per-category quota.
const QuotaUnlimited = -1

// FeatureID is the closed set of gateable features. Unknown feature strings
// are a validation error, never a silent deny.
type FeatureID string

const (
	FeatureOutfit          FeatureID = "outfit"
	FeatureWardrobe        FeatureID = "wardrobe"
	FeatureImageGeneration FeatureID = "image_generation"
	FeatureAnalysis        FeatureID = "analysis"
	FeatureWeeklyPlanner   FeatureID = "weekly_planner"
	FeatureClosetStats     FeatureID = "closet_stats"
)

func (f FeatureID) Valid() bool {
	switch f {
	case FeatureOutfit, FeatureWardrobe, FeatureImageGeneration,
		FeatureAnalysis, FeatureWeeklyPlanner, FeatureClosetStats:
		return true
	}
	return false
}

func ParseFeatureID(s string) (FeatureID, error) {
	f := FeatureID(s)
	if !f.Valid() {
		return "", utils.ErrInvalidInput
	}
	return f, nil
}

// trialAllowList is the static set of features a trial user can reach. It is
// a plain allow-list: adding a feature means adding it here explicitly.
var trialAllowList = map[FeatureID]bool{
	FeatureOutfit:          true,
	FeatureWardrobe:        true,
	FeatureImageGeneration: true,
}

// EvaluateEntitlement derives the access state from the subscription row, or
// from the signup-date trial when no row exists. Pure and side-effect free:
// it never mutates stored status, even when it locally overrides a stale
// trialing row past its trial end.
func EvaluateEntitlement(sub *dbm.Subscription, accountCreatedAt time.Time, now time.Time) response_models.EntitlementState {
	if sub == nil {
		trialEnd := accountCreatedAt.Add(TrialLengthDays * 24 * time.Hour)
		isActive := now.Before(trialEnd)

		status := dbm.SubStatusExpired
		if isActive {
			status = dbm.SubStatusTrialing
		}

		return response_models.EntitlementState{
			IsActive:      isActive,
			IsTrial:       isActive,
			IsPaid:        false,
			Status:        string(status),
			Plan:          string(dbm.PlanNone),
			DaysRemaining: utils.DaysUntil(trialEnd, now),
		}
	}

	isActive := sub.Status == dbm.SubStatusActive || sub.Status == dbm.SubStatusTrialing

	// Safety net for a trialing row whose trial_end has passed before the
	// provider's status transition arrived. The stored status stays
	// authoritative; only this evaluation reports inactive.
	if sub.Status == dbm.SubStatusTrialing && sub.TrialEnd > 0 && now.After(utils.FromUnixSeconds(sub.TrialEnd)) {
		isActive = false
	}

	daysRemaining := 0
	if sub.Status == dbm.SubStatusTrialing && sub.TrialEnd > 0 {
		// Paid plans deliberately show no countdown from current_period_end.
		daysRemaining = utils.DaysUntil(utils.FromUnixSeconds(sub.TrialEnd), now)
	}

	return response_models.EntitlementState{
		IsActive:      isActive,
		IsTrial:       sub.Status == dbm.SubStatusTrialing,
		IsPaid:        sub.Status == dbm.SubStatusActive,
		Status:        string(sub.Status),
		Plan:          string(sub.Plan),
		DaysRemaining: daysRemaining,
	}
}

// CanAccessFeature applies the gate policy: paid users reach everything,
// active trial users reach the allow-list, everyone else is denied.
func CanAccessFeature(feature FeatureID, state response_models.EntitlementState) bool {
	if !feature.Valid() {
		return false
	}
	if !state.IsActive {
		return false
	}
	if state.IsPaid {
		return true
	}
	if state.IsTrial {
		return trialAllowList[feature]
	}
	return false
}

// MaxItemsPerCategory returns the wardrobe quota for the state:
// QuotaUnlimited for paid, TrialGarmentQuota for trial, 0 otherwise.
func MaxItemsPerCategory(state response_models.EntitlementState) int {
	if !state.IsActive {
		return 0
	}
	if state.IsPaid {
		return QuotaUnlimited
	}
	if state.IsTrial {
		return TrialGarmentQuota
	}
	return 0
}

type EntitlementServiceInterface interface {
	CurrentState(ctx context.Context, accountID uuid.UUID) (response_models.EntitlementState, error)
}

type EntitlementService struct {
	accountRepo      repositories.AccountRepository
	subscriptionRepo repositories.SubscriptionRepository
}

func NewEntitlementService(
	accountRepo repositories.AccountRepository,
	subscriptionRepo repositories.SubscriptionRepository,
) EntitlementServiceInterface {
	return &EntitlementService{
		accountRepo:      accountRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

// CurrentState fetches the subscription row (or falls back to the signup
// trial) and evaluates it against the current clock. Computed fresh per
// request; no caching layer is authoritative.
func (e *EntitlementService) CurrentState(ctx context.Context, accountID uuid.UUID) (response_models.EntitlementState, error) {
	account, err := e.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return response_models.EntitlementState{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.EntitlementState{}, utils.ErrAccountNotFound
	}

	sub, err := e.subscriptionRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return response_models.EntitlementState{}, utils.ErrDatabaseError
	}

	return EvaluateEntitlement(sub, utils.FromUnixSeconds(account.CreatedAt), time.Now()), nil
}
