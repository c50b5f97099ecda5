package config

import "time"

// Config holds all application configuration.
// It is loaded once at startup and treated as immutable afterwards;
// components receive the slice of it they need at construction.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Dynamo DynamoConfig `mapstructure:"dynamo" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"`
	LLM    LLMConfig    `mapstructure:"llm"`
	Quiz   QuizConfig   `mapstructure:"quiz"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port           int      `mapstructure:"port"            validate:"required,gt=0,lt=65536"`
	LogLevel       string   `mapstructure:"log_level"       validate:"required,oneof=debug info warn error"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DynamoConfig contains the single-table store settings.
// EndpointURL is an optional override for DynamoDB Local.
type DynamoConfig struct {
	Region      string `mapstructure:"region"       validate:"required"`
	TableName   string `mapstructure:"table_name"   validate:"required"`
	GSI1Name    string `mapstructure:"gsi1_name"    validate:"required"`
	EndpointURL string `mapstructure:"endpoint_url"`
}

// AuthConfig contains the Cognito token verification settings and the
// sign-in allowlist. When UserPoolID or ClientID is empty, token
// verification is disabled and the API runs open (local development).
type AuthConfig struct {
	Region         string   `mapstructure:"region"`
	UserPoolID     string   `mapstructure:"user_pool_id"`
	ClientID       string   `mapstructure:"client_id"`
	AllowedEmails  []string `mapstructure:"allowed_emails"`
	AllowedDomains []string `mapstructure:"allowed_domains"`
}

// Enabled reports whether token verification is configured.
func (a AuthConfig) Enabled() bool {
	return a.UserPoolID != "" && a.ClientID != ""
}

// LLMConfig contains the Gemini integration settings for the homework
// advisor. An empty API key disables the advisor; homework submissions
// then degrade to a warning instead of failing.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name"`
}

// QuizConfig contains quiz engine tunables.
type QuizConfig struct {
	// SessionTTL bounds how long an abandoned session row lives
	// before the table's TTL mechanism removes it.
	SessionTTL time.Duration `mapstructure:"session_ttl" validate:"required,gt=0"`

	// DefaultQuestions is used when a start request omits the count.
	DefaultQuestions int `mapstructure:"default_questions" validate:"required,gt=0"`
}
