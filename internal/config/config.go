package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// Search provider settings
	SearchProvider string `json:"search_provider"` // "serper" or "brave"
	SerperAPIKey   string `json:"-"`               // Don't expose in JSON
	BraveAPIKey    string `json:"-"`               // Don't expose in JSON

	// Pipeline settings
	SearchResultCount    int `json:"search_result_count"`
	MinSentenceWords     int `json:"min_sentence_words"`
	SearchTimeoutSeconds int `json:"search_timeout_seconds"`
	QueryDelayMillis     int `json:"query_delay_ms"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Host:                 getEnvOrDefault("HOST", "0.0.0.0"),
		SearchProvider:       getEnvOrDefault("SEARCH_PROVIDER", "serper"),
		SerperAPIKey:         getEnvOrDefault("SERPER_API_KEY", ""),
		BraveAPIKey:          getEnvOrDefault("BRAVE_API_KEY", ""),
		SearchResultCount:    getEnvOrDefaultInt("SEARCH_RESULT_COUNT", 3),
		MinSentenceWords:     getEnvOrDefaultInt("MIN_SENTENCE_WORDS", 5),
		SearchTimeoutSeconds: getEnvOrDefaultInt("SEARCH_TIMEOUT_SECONDS", 10),
		QueryDelayMillis:     getEnvOrDefaultInt("QUERY_DELAY_MS", 1000),
	}

	return config, config.validate()
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	switch c.SearchProvider {
	case "serper":
		if c.SerperAPIKey == "" {
			return &ConfigError{Field: "SERPER_API_KEY", Message: "Serper API key is required"}
		}
	case "brave":
		if c.BraveAPIKey == "" {
			return &ConfigError{Field: "BRAVE_API_KEY", Message: "Brave API key is required"}
		}
	default:
		return &ConfigError{Field: "SEARCH_PROVIDER", Message: "must be \"serper\" or \"brave\""}
	}
	if c.SearchResultCount < 1 {
		return &ConfigError{Field: "SEARCH_RESULT_COUNT", Message: "must be at least 1"}
	}
	if c.MinSentenceWords < 1 {
		return &ConfigError{Field: "MIN_SENTENCE_WORDS", Message: "must be at least 1"}
	}
	return nil
}

// APIKey returns the credential for the configured search provider
func (c *Config) APIKey() string {
	if c.SearchProvider == "brave" {
		return c.BraveAPIKey
	}
	return c.SerperAPIKey
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
