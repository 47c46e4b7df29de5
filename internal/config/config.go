package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Port follows the cloud-container convention (PORT) so the service can
	// run unchanged on platforms that inject it.
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string
	// DataDir is where operators drop the catalog JSON files. Files are read
	// per request, so swapping them needs no restart.
	DataDir string
	// ProgramRulesPath optionally overrides the embedded program rule set.
	ProgramRulesPath string
	// WebDir holds the HTML template and static assets of the planner page.
	WebDir string
	// ExportRatePerMinute caps export requests per client IP. Rendering is
	// cheap but unauthenticated, so the cap is generous.
	ExportRatePerMinute int
	// AllowedOrigins controls HTTP CORS. Empty slice means all origins are
	// permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		Port:                getEnv("PORT", "8080"),
		GinMode:             getEnv("GIN_MODE", "debug"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "pretty"),
		DataDir:             getEnv("DATA_DIR", "./data"),
		ProgramRulesPath:    getEnv("PROGRAM_RULES_YAML", ""),
		WebDir:              getEnv("WEB_DIR", "./web"),
		ExportRatePerMinute: getEnvInt("EXPORT_RATE_PER_MINUTE", 60),
		AllowedOrigins:      parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
