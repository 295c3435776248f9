package request_models

type CreateFeedbackRequest struct {
	PlanID  string `json:"plan_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
