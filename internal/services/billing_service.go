package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	dbm "lookbook/internal/models/db_models"
	"lookbook/internal/models/response_models"
	"lookbook/internal/repositories"
	"lookbook/pkg/utils"
)

type BillingConfig struct {
	MonthlyPriceID string // provider-side price id for the monthly plan
	YearlyPriceID  string // provider-side price id for the yearly plan
	WebhookSecret  string // HMAC key for webhook signatures
	SuccessURL     string
	CancelURL      string
	ProviderName   string
}

// BillingGateway is the fixed boundary to the payments provider: checkout and
// portal session creation only. Webhooks arrive separately as signed events.
type BillingGateway interface {
	CreateCheckoutSession(ctx context.Context, accountID uuid.UUID, email, priceID, successURL, cancelURL string) (string, error)
	CreatePortalSession(ctx context.Context, customerID string) (string, error)
}

type BillingServiceInterface interface {
	ApplyEvent(ctx context.Context, event BillingEvent) error
	CreateCheckoutForPlan(ctx context.Context, accountID uuid.UUID, planCode string) (*response_models.CreateCheckoutResponse, error)
	CreatePortalSession(ctx context.Context, accountID uuid.UUID) (*response_models.PortalSessionResponse, error)
	Config() BillingConfig
}

type billingService struct {
	cfg              BillingConfig
	gateway          BillingGateway
	accountRepo      repositories.AccountRepository
	subscriptionRepo repositories.SubscriptionRepository
	mail             IMailService
}

func NewBillingService(
	cfg BillingConfig,
	gateway BillingGateway,
	accountRepo repositories.AccountRepository,
	subscriptionRepo repositories.SubscriptionRepository,
	mail IMailService,
) (BillingServiceInterface, error) {
	if cfg.MonthlyPriceID == "" || cfg.YearlyPriceID == "" {
		return nil, fmt.Errorf("missing billing price configuration")
	}
	if cfg.WebhookSecret == "" {
		return nil, fmt.Errorf("missing billing webhook secret")
	}
	return &billingService{
		cfg:              cfg,
		gateway:          gateway,
		accountRepo:      accountRepo,
		subscriptionRepo: subscriptionRepo,
		mail:             mail,
	}, nil
}

func (b *billingService) Config() BillingConfig {
	return b.cfg
}

// resolvePlan maps a provider price id to a plan by exact string match.
// First match wins; neither matching is an error, never a silent default.
func (b *billingService) resolvePlan(priceID string) (dbm.SubscriptionPlan, error) {
	switch priceID {
	case b.cfg.MonthlyPriceID:
		return dbm.PlanMonthly, nil
	case b.cfg.YearlyPriceID:
		return dbm.PlanYearly, nil
	}
	return dbm.PlanNone, fmt.Errorf("%w: unconfigured price id %q", utils.ErrPlanNotFound, priceID)
}

func (b *billingService) priceForPlanCode(planCode string) (string, error) {
	switch planCode {
	case string(dbm.PlanMonthly):
		return b.cfg.MonthlyPriceID, nil
	case string(dbm.PlanYearly):
		return b.cfg.YearlyPriceID, nil
	}
	return "", fmt.Errorf("%w: %q", utils.ErrPlanNotFound, planCode)
}

// ApplyEvent is the reducer: one externally-verified event in, one idempotent
// mutation of the subscription row out. Duplicate deliveries are no-ops via
// the recorded event id; two different event kinds racing resolve by last
// write wins per field, with no cross-event sequencing.
func (b *billingService) ApplyEvent(ctx context.Context, event BillingEvent) error {
	seen, err := b.subscriptionRepo.EventSeen(ctx, event.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if seen {
		log.Printf("billing: event %s already processed, skipping", event.ID)
		return nil
	}

	switch event.Kind {
	case EventCheckoutCompleted:
		err = b.applyCheckoutCompleted(ctx, event)
	case EventSubscriptionUpdated:
		err = b.applySubscriptionSnapshot(ctx, event)
	case EventSubscriptionDeleted:
		err = b.applySubscriptionSnapshot(ctx, event)
	case EventPaymentSucceeded:
		err = b.applyStatusWrite(ctx, event, dbm.SubStatusActive)
	case EventPaymentFailed:
		err = b.applyStatusWrite(ctx, event, dbm.SubStatusPastDue)
	default:
		return fmt.Errorf("%w: %q", utils.ErrUnknownEventKind, event.Kind)
	}
	if err != nil {
		return err
	}

	payload, _ := json.Marshal(event)
	record := &dbm.BillingEventRecord{
		EventID:                event.ID,
		Kind:                   string(event.Kind),
		ExternalSubscriptionID: event.Data.SubscriptionID,
		Payload:                datatypes.JSON(payload),
	}
	if err := b.subscriptionRepo.RecordEvent(ctx, record); err != nil {
		// The mutation already applied; a failed audit write must not make
		// the provider redeliver.
		log.Printf("billing: failed to record event %s: %v", event.ID, err)
	}
	return nil
}

func (b *billingService) applyCheckoutCompleted(ctx context.Context, event BillingEvent) error {
	accountID, err := uuid.Parse(event.Data.AccountID)
	if err != nil {
		return fmt.Errorf("%w: bad account id in checkout metadata", utils.ErrInvalidInput)
	}

	plan, err := b.resolvePlan(event.Data.PriceID)
	if err != nil {
		return err
	}

	status := dbm.SubscriptionStatus(event.Data.Status)
	if status == "" {
		status = dbm.SubStatusTrialing
	}

	sub := &dbm.Subscription{
		AccountID:              accountID,
		Status:                 status,
		Plan:                   plan,
		TrialStart:             event.Data.TrialStart,
		TrialEnd:               event.Data.TrialEnd,
		CurrentPeriodStart:     event.Data.PeriodStart,
		CurrentPeriodEnd:       event.Data.PeriodEnd,
		CancelAtPeriodEnd:      event.Data.CancelAtPeriodEnd,
		ExternalSubscriptionID: event.Data.SubscriptionID,
		ExternalCustomerID:     event.Data.CustomerID,
	}

	if err := b.subscriptionRepo.Upsert(ctx, sub); err != nil {
		return utils.ErrDatabaseError
	}

	if event.Data.CustomerID != "" {
		if err := b.accountRepo.StampExternalCustomerID(ctx, accountID, event.Data.CustomerID); err != nil {
			log.Printf("billing: failed to stamp customer id on account %s: %v", accountID, err)
		}
	}
	return nil
}

// applySubscriptionSnapshot overwrites the row with the provider's current
// view. A missing row is a recoverable anomaly: logged and skipped so the
// provider gets a 200 and stops retrying an event we cannot apply.
func (b *billingService) applySubscriptionSnapshot(ctx context.Context, event BillingEvent) error {
	sub, err := b.subscriptionRepo.FindByExternalID(ctx, event.Data.SubscriptionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		log.Printf("billing: %s for unknown subscription %s, skipping", event.Kind, event.Data.SubscriptionID)
		return nil
	}

	status := dbm.SubscriptionStatus(event.Data.Status)
	if event.Kind == EventSubscriptionDeleted && status == "" {
		status = dbm.SubStatusCanceled
	}
	if status != "" {
		sub.Status = status
	}
	if event.Data.PriceID != "" {
		if plan, err := b.resolvePlan(event.Data.PriceID); err == nil {
			sub.Plan = plan
		} else {
			log.Printf("billing: %v", err)
		}
	}

	// Trial timestamps are overwritten even to zero: the provider no longer
	// reporting a trial nulls them here too.
	sub.TrialStart = event.Data.TrialStart
	sub.TrialEnd = event.Data.TrialEnd
	sub.CurrentPeriodStart = event.Data.PeriodStart
	sub.CurrentPeriodEnd = event.Data.PeriodEnd
	sub.CancelAtPeriodEnd = event.Data.CancelAtPeriodEnd

	if err := b.subscriptionRepo.Update(ctx, sub); err != nil {
		return utils.ErrDatabaseError
	}

	if event.Kind == EventSubscriptionDeleted {
		b.notifySubscriptionEnded(ctx, sub.AccountID)
	}
	return nil
}

// notifySubscriptionEnded emails the account once the provider reports the
// subscription gone. Best effort: the row mutation already landed, so a mail
// failure is logged, never surfaced to the webhook.
func (b *billingService) notifySubscriptionEnded(ctx context.Context, accountID uuid.UUID) {
	account, err := b.accountRepo.FindByID(ctx, accountID)
	if err != nil || account == nil {
		log.Printf("billing: cannot load account %s for subscription-ended mail: %v", accountID, err)
		return
	}
	if err := b.mail.SendMailToNotifyUser(account.Email, "Your subscription has ended",
		"Your lookbook subscription has ended. You can resubscribe any time from the billing page."); err != nil {
		log.Printf("billing: failed to send subscription-ended mail to %s: %v", account.Email, err)
	}
}

// applyStatusWrite handles the payment outcome signals. They intentionally
// write status directly (no compare-and-swap): payment success must win a
// race with a late subscription_updated carrying an older status.
func (b *billingService) applyStatusWrite(ctx context.Context, event BillingEvent, status dbm.SubscriptionStatus) error {
	rows, err := b.subscriptionRepo.UpdateStatusByExternalID(ctx, event.Data.SubscriptionID, status)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		log.Printf("billing: %s for unknown subscription %s, skipping", event.Kind, event.Data.SubscriptionID)
	}
	return nil
}

func (b *billingService) CreateCheckoutForPlan(ctx context.Context, accountID uuid.UUID, planCode string) (*response_models.CreateCheckoutResponse, error) {
	priceID, err := b.priceForPlanCode(planCode)
	if err != nil {
		return nil, err
	}

	account, err := b.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}

	checkoutURL, err := b.gateway.CreateCheckoutSession(ctx, accountID, account.Email, priceID, b.cfg.SuccessURL, b.cfg.CancelURL)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}

	return &response_models.CreateCheckoutResponse{
		CheckoutURL: checkoutURL,
		PlanCode:    planCode,
	}, nil
}

func (b *billingService) CreatePortalSession(ctx context.Context, accountID uuid.UUID) (*response_models.PortalSessionResponse, error) {
	account, err := b.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	if account.ExternalCustomerID == "" {
		return nil, utils.ErrSubscriptionNotFound
	}

	portalURL, err := b.gateway.CreatePortalSession(ctx, account.ExternalCustomerID)
	if err != nil {
		return nil, fmt.Errorf("create portal session: %w", err)
	}

	return &response_models.PortalSessionResponse{PortalURL: portalURL}, nil
}
