package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.models", []string{
		"gemini-2.0-flash-exp",
		"gemini-1.5-flash-latest",
		"gemini-1.5-flash",
		"gemini-1.5-pro-latest",
	})
	v.SetDefault("llm.max_output_tokens", 8000)
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.fallback_pause_ms", 500)

	// Optional config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables with BUILDER_ prefix, e.g. BUILDER_SERVER_PORT.
	v.SetEnvPrefix("BUILDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The API key also honors the plain GEMINI_API_KEY name used by the
	// hosted frontends and the Gemini docs.
	if err := v.BindEnv("llm.gemini_api_key", "BUILDER_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind environment variable: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
