package request_models

type GenerateOutfitRequest struct {
	Occasion        string `json:"occasion" binding:"required"`
	StylePreference string `json:"style_preference"`
}

type WeeklyPreference struct {
	Day      string `json:"day" binding:"required"`
	Occasion string `json:"occasion"`
}

type GenerateWeeklyPlanRequest struct {
	Occasion    string             `json:"occasion"`
	Preferences []WeeklyPreference `json:"preferences"`
}
