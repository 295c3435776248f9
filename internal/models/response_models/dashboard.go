package response_models

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type ColorCount struct {
	Color string `json:"color"`
	Count int64  `json:"count"`
}

type ClosetDashboard struct {
	TotalGarments  int64           `json:"total_garments"`
	ActiveGarments int64           `json:"active_garments"`
	ByCategory     []CategoryCount `json:"by_category"`
	ByColor        []ColorCount    `json:"by_color"`
	RecentPlans    []OutfitPlanRef `json:"recent_plans"`
}

type OutfitPlanRef struct {
	PlanID    string `json:"plan_id"`
	Kind      string `json:"kind"`
	Occasion  string `json:"occasion"`
	CreatedAt int64  `json:"created_at"`
}
