package response_models

// OutfitGarment is the wardrobe item view embedded in generated outfits.
type OutfitGarment struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
	Style    string   `json:"style"`
	Seasons  []string `json:"seasons"`
}

// OutfitEntry is one generated look: the garment ids the stylist picked plus
// the weather that conditioned the pick and similar-garment alternatives.
type OutfitEntry struct {
	Day          string          `json:"day,omitempty"`
	Occasion     string          `json:"occasion"`
	GarmentIDs   []string        `json:"garment_ids"`
	Garments     []OutfitGarment `json:"garments,omitempty"`
	Alternatives []OutfitGarment `json:"alternatives,omitempty"`
	Notes        string          `json:"notes"`
	Weather      WeatherSnapshot `json:"weather"`
}

type OutfitPlanResponse struct {
	PlanID   string          `json:"plan_id"`
	Kind     string          `json:"kind"`
	Occasion string          `json:"occasion"`
	Outfits  []OutfitEntry   `json:"outfits"`
	Weather  WeatherSnapshot `json:"weather"`
}

// GarmentAnalysis is the strict-JSON attribute set the vision model extracts
// from a garment photo, used to prefill the create-garment form.
type GarmentAnalysis struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Color    string   `json:"color"`
	Style    string   `json:"style"`
	Seasons  []string `json:"seasons"`
}
