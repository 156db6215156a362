package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Provider identifies the text generation backend
type Provider string

const (
	ProviderOpenRouter Provider = "openrouter"
	ProviderGemini     Provider = "gemini"
)

// Settings holds the runtime configuration of the backend service
type Settings struct {
	AppName string
	Port    string

	Provider          Provider
	ModelName         string
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	GeminiAPIKey      string

	RequestTimeout time.Duration
	MaxRetries     int

	RateLimitPerMinute int
	CORSOrigins        []string
}

// Load reads the settings from environment variables, applying defaults
// for everything that is unset. Provider credentials are not validated
// here; the provider constructors reject missing keys.
func Load() Settings {
	return Settings{
		AppName:            getEnv("APP_NAME", "LexSim Backend"),
		Port:               getEnv("PORT", "8080"),
		Provider:           Provider(getEnv("LLM_PROVIDER", string(ProviderOpenRouter))),
		ModelName:          getEnv("LLM_MODEL_NAME", "openrouter/auto"),
		OpenRouterAPIKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterBaseURL:  getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		RequestTimeout:     getEnvDuration("LLM_REQUEST_TIMEOUT", 60*time.Second),
		MaxRetries:         getEnvInt("LLM_MAX_RETRIES", 3),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 10),
		CORSOrigins:        getEnvList("CORS_ORIGINS", []string{"*"}),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
