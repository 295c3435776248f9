package request_models

type CreateCheckoutRequest struct {
	PlanCode string `json:"plan_code" binding:"required"` // "monthly" | "yearly"
}
