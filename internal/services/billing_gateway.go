package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type BillingGatewayConfig struct {
	APIBase string // provider REST base URL
	APIKey  string // bearer token
}

// httpBillingGateway talks to the payment provider's session endpoints. The
// provider itself stays opaque: two POSTs, each returning a redirect URL.
type httpBillingGateway struct {
	cfg  BillingGatewayConfig
	http *http.Client
}

func NewHTTPBillingGateway(cfg BillingGatewayConfig) BillingGateway {
	return &httpBillingGateway{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *httpBillingGateway) CreateCheckoutSession(ctx context.Context, accountID uuid.UUID, email, priceID, successURL, cancelURL string) (string, error) {
	body := map[string]interface{}{
		"price_id":    priceID,
		"email":       email,
		"success_url": successURL,
		"cancel_url":  cancelURL,
		"metadata": map[string]string{
			"account_id": accountID.String(),
		},
	}
	return g.postForURL(ctx, "/checkout/sessions", body)
}

func (g *httpBillingGateway) CreatePortalSession(ctx context.Context, customerID string) (string, error) {
	body := map[string]interface{}{
		"customer_id": customerID,
	}
	return g.postForURL(ctx, "/portal/sessions", body)
}

func (g *httpBillingGateway) postForURL(ctx context.Context, path string, body map[string]interface{}) (string, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.APIBase+path, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("billing provider returned status %d", resp.StatusCode)
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.URL == "" {
		return "", fmt.Errorf("billing provider returned no session url")
	}
	return out.URL, nil
}
