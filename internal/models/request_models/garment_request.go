package request_models

type CreateGarmentRequest struct {
	Name     string   `json:"name" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Color    string   `json:"color"`
	Style    string   `json:"style"`
	Seasons  []string `json:"seasons"`
	ImageURL string   `json:"image_url"`
}

type UpdateGarmentRequest struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
	Style    string   `json:"style"`
	Seasons  []string `json:"seasons"`
	ImageURL string   `json:"image_url"`
	IsActive *bool    `json:"is_active"`
}

type AnalyzeGarmentRequest struct {
	ImageURL string `json:"image_url" binding:"required,url"`
}
