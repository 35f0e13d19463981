package remote

import (
	"os"
	"strconv"
)

// Config holds all configuration for the remote save collaborator.
type Config struct {
	Endpoint  string
	Token     string
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:  "https://tripmateweb.store/api",
		TimeoutMs: 15000,
	}
}

// LoadConfig reads remote configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("TRIPMATE_API_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("TRIPMATE_API_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("TRIPMATE_API_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("TRIPMATE_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
