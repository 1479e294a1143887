package config

// DefaultModelName is the Gemini model used when no override is configured.
const DefaultModelName = "gemini-2.0-flash"

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

// LLMConfig contains all settings for the generative-text integration.
//
// GeminiAPIKey deliberately has no "required" tag: a missing key must not
// abort startup. The gemini adapter records it as a permanent initialization
// error and every request surfaces that error instead.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name" validate:"required"`
}
