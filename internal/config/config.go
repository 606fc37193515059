package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all settings for the Gemini integration.
type LLMConfig struct {
	// GeminiAPIKey is deliberately not required here: a missing key is not
	// checked at startup and only surfaces when the first model call is made.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// Models is the candidate model list, tried strictly in this order.
	Models []string `mapstructure:"models" validate:"required,min=1"`

	// MaxOutputTokens bounds the length of a single model response.
	MaxOutputTokens int32 `mapstructure:"max_output_tokens" validate:"required,gt=0"`

	// Temperature is the fixed sampling temperature for every call.
	Temperature float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`

	// FallbackPauseMS is the pause between candidate attempts after a
	// transient failure, in milliseconds.
	FallbackPauseMS int `mapstructure:"fallback_pause_ms" validate:"gte=0"`
}
