package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lookbook/internal/models/response_models"
)

// WeatherClientInterface is the boundary to the weather provider. A non-2xx
// upstream response is a hard failure for the request that needed it.
type WeatherClientInterface interface {
	GetCurrent(ctx context.Context, city string) (*response_models.WeatherSnapshot, error)
	GetForecast(ctx context.Context, city string, days int) ([]response_models.WeatherSnapshot, error)
}

type OpenWeatherConfig struct {
	APIKey  string
	BaseURL string // defaults to the public API host
	Units   string // "metric" unless overridden
}

type openWeatherClient struct {
	cfg  OpenWeatherConfig
	http *http.Client
}

func NewOpenWeatherClient(cfg OpenWeatherConfig) WeatherClientInterface {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openweathermap.org/data/2.5"
	}
	if cfg.Units == "" {
		cfg.Units = "metric"
	}
	return &openWeatherClient{
		cfg:  cfg,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type owmEntry struct {
	Dt   int64  `json:"dt"`
	DtTx string `json:"dt_txt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

func (c *openWeatherClient) GetCurrent(ctx context.Context, city string) (*response_models.WeatherSnapshot, error) {
	endpoint := fmt.Sprintf("%s/weather?q=%s&units=%s&appid=%s",
		c.cfg.BaseURL, url.QueryEscape(city), c.cfg.Units, c.cfg.APIKey)

	var entry owmEntry
	if err := c.getJSON(ctx, endpoint, &entry); err != nil {
		return nil, err
	}

	snap := toSnapshot(entry, city)
	snap.Date = time.Now().UTC().Format("2006-01-02")
	return &snap, nil
}

func (c *openWeatherClient) GetForecast(ctx context.Context, city string, days int) ([]response_models.WeatherSnapshot, error) {
	if days < 1 {
		days = 1
	}
	endpoint := fmt.Sprintf("%s/forecast?q=%s&units=%s&appid=%s",
		c.cfg.BaseURL, url.QueryEscape(city), c.cfg.Units, c.cfg.APIKey)

	var payload struct {
		List []owmEntry `json:"list"`
		City struct {
			Name string `json:"name"`
		} `json:"city"`
	}
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	// The forecast endpoint returns 3-hour buckets; keep the midday bucket of
	// each calendar day as that day's representative conditions.
	var out []response_models.WeatherSnapshot
	seen := make(map[string]bool)
	for _, entry := range payload.List {
		date := strings.SplitN(entry.DtTx, " ", 2)[0]
		if date == "" || seen[date] {
			continue
		}
		if !strings.Contains(entry.DtTx, "12:00:00") && len(payload.List) > days {
			continue
		}
		seen[date] = true
		snap := toSnapshot(entry, city)
		snap.Date = date
		out = append(out, snap)
		if len(out) >= days {
			break
		}
	}

	if len(out) == 0 {
		return nil, ErrWeatherUnavailable
	}
	// Pad short forecasts by repeating the last known day.
	for len(out) < days {
		last := out[len(out)-1]
		next, _ := time.Parse("2006-01-02", last.Date)
		last.Date = next.AddDate(0, 0, 1).Format("2006-01-02")
		out = append(out, last)
	}
	return out, nil
}

func (c *openWeatherClient) getJSON(ctx context.Context, endpoint string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: upstream status %d", ErrWeatherUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrWeatherUnavailable, err)
	}
	return nil
}

func toSnapshot(entry owmEntry, city string) response_models.WeatherSnapshot {
	snap := response_models.WeatherSnapshot{
		City:       city,
		TempC:      entry.Main.Temp,
		FeelsLikeC: entry.Main.FeelsLike,
		Humidity:   entry.Main.Humidity,
		WindKph:    entry.Wind.Speed * 3.6,
	}
	if entry.Name != "" {
		snap.City = entry.Name
	}
	if len(entry.Weather) > 0 {
		snap.Condition = entry.Weather[0].Main
		snap.Description = entry.Weather[0].Description
		snap.RainLikely = strings.Contains(strings.ToLower(entry.Weather[0].Main), "rain") ||
			strings.Contains(strings.ToLower(entry.Weather[0].Main), "drizzle") ||
			strings.Contains(strings.ToLower(entry.Weather[0].Main), "thunderstorm")
	}
	return snap
}
