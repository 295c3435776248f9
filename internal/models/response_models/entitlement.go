package response_models

// EntitlementState is the derived, non-persisted access summary for a user at
// a point in time. It is recomputed per request and never cached
// authoritatively.
type EntitlementState struct {
	IsActive      bool   `json:"is_active"`
	IsTrial       bool   `json:"is_trial"`
	IsPaid        bool   `json:"is_paid"`
	Status        string `json:"status"`
	Plan          string `json:"plan"`
	DaysRemaining int    `json:"days_remaining"`
}
