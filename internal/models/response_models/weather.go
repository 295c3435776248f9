package response_models

// WeatherSnapshot is the normalized view of upstream weather data that gets
// merged into every generated outfit entry.
type WeatherSnapshot struct {
	City        string  `json:"city"`
	Date        string  `json:"date"`
	TempC       float64 `json:"temp_c"`
	FeelsLikeC  float64 `json:"feels_like_c"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindKph     float64 `json:"wind_kph"`
	RainLikely  bool    `json:"rain_likely"`
}
