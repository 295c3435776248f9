package stylist_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"lookbook/pkg/utils"
)

var Module = fx.Provide(
	ProvideStylistClient,
	ProvideWeatherClient)

// StylistConfig holds configuration for the generation provider.
type StylistConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideStylistClient creates a stylist client based on environment variables.
func ProvideStylistClient() (utils.StylistClientInterface, error) {
	config := getStylistConfig()

	log.Printf("Initializing %s stylist client with model: %s", config.Provider, config.Model)

	return utils.NewStylistClient(config.Provider, config.APIKey, config.Model)
}

func ProvideWeatherClient() utils.WeatherClientInterface {
	return utils.NewOpenWeatherClient(utils.OpenWeatherConfig{
		APIKey: os.Getenv("OPENWEATHER_API_KEY"),
	})
}

func getStylistConfig() StylistConfig {
	provider := getEnvWithDefault("STYLIST_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return StylistConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
