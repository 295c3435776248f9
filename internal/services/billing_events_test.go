package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookbook/pkg/utils"
)

func TestDecodeBillingEvent(t *testing.T) {
	t.Run("valid event", func(t *testing.T) {
		raw := []byte(`{"id":"evt_1","type":"subscription_updated","data":{"subscription_id":"sub_1","status":"active"}}`)
		event, err := DecodeBillingEvent(raw)
		require.NoError(t, err)
		assert.Equal(t, EventSubscriptionUpdated, event.Kind)
		assert.Equal(t, "sub_1", event.Data.SubscriptionID)
	})

	t.Run("unknown kind rejected", func(t *testing.T) {
		raw := []byte(`{"id":"evt_1","type":"plan_vaporized","data":{"subscription_id":"sub_1"}}`)
		_, err := DecodeBillingEvent(raw)
		assert.ErrorIs(t, err, utils.ErrUnknownEventKind)
	})

	t.Run("missing event id rejected", func(t *testing.T) {
		raw := []byte(`{"type":"payment_succeeded","data":{"subscription_id":"sub_1"}}`)
		_, err := DecodeBillingEvent(raw)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("non-checkout without subscription id rejected", func(t *testing.T) {
		raw := []byte(`{"id":"evt_1","type":"payment_failed","data":{}}`)
		_, err := DecodeBillingEvent(raw)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	})

	t.Run("checkout may omit subscription id", func(t *testing.T) {
		raw := []byte(`{"id":"evt_1","type":"checkout_completed","data":{"account_id":"abc","price_id":"p"}}`)
		_, err := DecodeBillingEvent(raw)
		assert.NoError(t, err)
	})
}

func TestVerifyWebhookSignature(t *testing.T) {
	secret := "whsec_test"
	body := []byte(`{"id":"evt_1","type":"payment_succeeded","data":{"subscription_id":"sub_1"}}`)
	sig := SignWebhookBody(secret, body)

	t.Run("valid signature", func(t *testing.T) {
		assert.NoError(t, VerifyWebhookSignature(secret, body, sig))
	})

	t.Run("accepts sha256 prefix", func(t *testing.T) {
		assert.NoError(t, VerifyWebhookSignature(secret, body, "sha256="+sig))
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		tampered := []byte(`{"id":"evt_1","type":"payment_succeeded","data":{"subscription_id":"sub_2"}}`)
		assert.ErrorIs(t, VerifyWebhookSignature(secret, tampered, sig), utils.ErrWebhookSignatureInvalid)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		other := SignWebhookBody("whsec_other", body)
		assert.ErrorIs(t, VerifyWebhookSignature(secret, body, other), utils.ErrWebhookSignatureInvalid)
	})

	t.Run("empty signature rejected", func(t *testing.T) {
		assert.ErrorIs(t, VerifyWebhookSignature(secret, body, ""), utils.ErrWebhookSignatureInvalid)
	})
}
