package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"lookbook/pkg/utils"
)

// EventKind is the closed set of billing-provider event kinds. Decoding an
// unknown kind fails loudly so every new provider event is handled
// deliberately rather than falling through a string switch.
type EventKind string

const (
	EventCheckoutCompleted   EventKind = "checkout_completed"
	EventSubscriptionUpdated EventKind = "subscription_updated"
	EventSubscriptionDeleted EventKind = "subscription_deleted"
	EventPaymentSucceeded    EventKind = "payment_succeeded"
	EventPaymentFailed       EventKind = "payment_failed"
)

func (k EventKind) Valid() bool {
	switch k {
	case EventCheckoutCompleted, EventSubscriptionUpdated, EventSubscriptionDeleted,
		EventPaymentSucceeded, EventPaymentFailed:
		return true
	}
	return false
}

// BillingEventData carries the provider's subscription snapshot. Timestamps
// are unix seconds; zero means the provider did not report the field (e.g. a
// trial no longer exists).
type BillingEventData struct {
	AccountID         string `json:"account_id"` // checkout metadata, set on checkout_completed
	CustomerID        string `json:"customer_id"`
	SubscriptionID    string `json:"subscription_id"`
	PriceID           string `json:"price_id"`
	Status            string `json:"status"`
	TrialStart        int64  `json:"trial_start"`
	TrialEnd          int64  `json:"trial_end"`
	PeriodStart       int64  `json:"current_period_start"`
	PeriodEnd         int64  `json:"current_period_end"`
	CancelAtPeriodEnd bool   `json:"cancel_at_period_end"`
}

type BillingEvent struct {
	ID   string           `json:"id"`
	Kind EventKind        `json:"type"`
	Data BillingEventData `json:"data"`
}

// DecodeBillingEvent parses a verified webhook body into the tagged event.
func DecodeBillingEvent(raw []byte) (BillingEvent, error) {
	var event BillingEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return BillingEvent{}, fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}
	if event.ID == "" {
		return BillingEvent{}, fmt.Errorf("%w: missing event id", utils.ErrInvalidInput)
	}
	if !event.Kind.Valid() {
		return BillingEvent{}, fmt.Errorf("%w: %q", utils.ErrUnknownEventKind, event.Kind)
	}
	if event.Kind != EventCheckoutCompleted && event.Data.SubscriptionID == "" {
		return BillingEvent{}, fmt.Errorf("%w: missing subscription id", utils.ErrInvalidInput)
	}
	return event, nil
}

// VerifyWebhookSignature checks the provider's HMAC-SHA256 hex signature over
// the raw body. Rejection happens before any payload field is trusted.
func VerifyWebhookSignature(secret string, rawBody []byte, signatureHeader string) error {
	signatureHeader = strings.TrimSpace(strings.TrimPrefix(signatureHeader, "sha256="))
	if secret == "" || signatureHeader == "" {
		return utils.ErrWebhookSignatureInvalid
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(signatureHeader))) {
		return utils.ErrWebhookSignatureInvalid
	}
	return nil
}

// SignWebhookBody produces the signature the provider would send. Used by the
// local checkout simulator and tests.
func SignWebhookBody(secret string, rawBody []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(rawBody)
	return hex.EncodeToString(mac.Sum(nil))
}
