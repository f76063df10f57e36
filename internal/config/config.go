package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port         string
	Env          string
	WriteTimeout time.Duration

	// Generation
	Provider     string
	CohereAPIKey string
	CohereModel  string
	CohereURL    string
	OpenAIAPIKey string
	OpenAIModel  string
	OpenAIURL    string
	GeminiAPIKey string
	GeminiModel  string
	GeminiURL    string

	// CORS
	AllowedOrigins []string

	// Exchange audit log, disabled when empty
	DatabaseURL string

	// Tracing, disabled when empty
	OTLPEndpoint string
	ServiceName  string
}

var defaults = map[string]any{
	"PORT":                        "8080",
	"ENV":                         "development",
	"SERVER_WRITE_TIMEOUT":        "60s",
	"GENERATION_PROVIDER":         "cohere",
	"COHERE_MODEL":                "command-r-plus-08-2024",
	"OPENAI_MODEL":                "gpt-4o-mini",
	"GEMINI_MODEL":                "gemini-1.5-flash",
	"CORS_ALLOWED_ORIGINS":        "*",
	"OTEL_SERVICE_NAME":           "insight-advisor",
	"COHERE_API_KEY":              "",
	"COHERE_BASE_URL":             "",
	"OPENAI_API_KEY":              "",
	"OPENAI_BASE_URL":             "",
	"GEMINI_API_KEY":              "",
	"GEMINI_BASE_URL":             "",
	"DATABASE_URL":                "",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "",
}

// Load reads .env (if present) and the process environment once.
func Load() *Config {
	_ = godotenv.Load()
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Port:           v.GetString("PORT"),
		Env:            v.GetString("ENV"),
		WriteTimeout:   durationOrDefault(v, "SERVER_WRITE_TIMEOUT", 60*time.Second),
		Provider:       strings.ToLower(strings.TrimSpace(v.GetString("GENERATION_PROVIDER"))),
		CohereAPIKey:   v.GetString("COHERE_API_KEY"),
		CohereModel:    v.GetString("COHERE_MODEL"),
		CohereURL:      v.GetString("COHERE_BASE_URL"),
		OpenAIAPIKey:   v.GetString("OPENAI_API_KEY"),
		OpenAIModel:    v.GetString("OPENAI_MODEL"),
		OpenAIURL:      v.GetString("OPENAI_BASE_URL"),
		GeminiAPIKey:   v.GetString("GEMINI_API_KEY"),
		GeminiModel:    v.GetString("GEMINI_MODEL"),
		GeminiURL:      v.GetString("GEMINI_BASE_URL"),
		AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		OTLPEndpoint:   v.GetString("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:    v.GetString("OTEL_SERVICE_NAME"),
	}
}

// Model returns the model id for the selected provider.
func (c *Config) Model() string {
	switch c.Provider {
	case "openai":
		return c.OpenAIModel
	case "gemini":
		return c.GeminiModel
	default:
		return c.CohereModel
	}
}

// APIKey returns the credential for the selected provider.
func (c *Config) APIKey() string {
	switch c.Provider {
	case "openai":
		return c.OpenAIAPIKey
	case "gemini":
		return c.GeminiAPIKey
	default:
		return c.CohereAPIKey
	}
}

// BaseURL returns the endpoint override for the selected provider.
func (c *Config) BaseURL() string {
	switch c.Provider {
	case "openai":
		return c.OpenAIURL
	case "gemini":
		return c.GeminiURL
	default:
		return c.CohereURL
	}
}

func durationOrDefault(v *viper.Viper, key string, defaultVal time.Duration) time.Duration {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return defaultVal
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
