package response_models

type CreateCheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
	PlanCode    string `json:"plan_code"`
}

type PortalSessionResponse struct {
	PortalURL string `json:"portal_url"`
}
