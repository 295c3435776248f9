package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubscriptionStatus string

const (
	SubStatusTrialing SubscriptionStatus = "trialing"
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusCanceled SubscriptionStatus = "canceled"
	SubStatusPastDue  SubscriptionStatus = "past_due"
	SubStatusExpired  SubscriptionStatus = "expired"
	SubStatusNone     SubscriptionStatus = "none"
)

type SubscriptionPlan string

const (
	PlanMonthly SubscriptionPlan = "monthly"
	PlanYearly  SubscriptionPlan = "yearly"
	PlanNone    SubscriptionPlan = "none"
)

// Subscription is the single billing row per account. It is created by the
// first completed checkout, mutated only by the billing event reducer, and
// never deleted; cancellation just flips status.
//
// Timestamps are unix seconds; zero means "not reported by the provider".
type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"uniqueIndex"`

	Status SubscriptionStatus `gorm:"index;default:none"`
	Plan   SubscriptionPlan   `gorm:"default:none"`

	TrialStart         int64
	TrialEnd           int64
	CurrentPeriodStart int64
	CurrentPeriodEnd   int64
	CancelAtPeriodEnd  bool

	// Provider-side ids; the subscription id is the idempotency key for
	// update events.
	ExternalSubscriptionID string `gorm:"uniqueIndex"`
	ExternalCustomerID     string `gorm:"index"`

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
