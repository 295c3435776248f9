package response_models

type LoginResponse struct {
	Token       string           `json:"token"`
	Entitlement EntitlementState `json:"entitlement"`
}

type ProfileResponse struct {
	ID          string           `json:"id"`
	DisplayName string           `json:"display_name"`
	Email       string           `json:"email"`
	City        string           `json:"city"`
	Language    string           `json:"language"`
	CreatedAt   int64            `json:"created_at"`
	Entitlement EntitlementState `json:"entitlement"`
}
