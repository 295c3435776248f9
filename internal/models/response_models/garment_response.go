package response_models

type GarmentResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Color     string   `json:"color"`
	Style     string   `json:"style"`
	Seasons   []string `json:"seasons"`
	ImageURL  string   `json:"image_url"`
	IsActive  bool     `json:"is_active"`
	CreatedAt int64    `json:"created_at"`
}
