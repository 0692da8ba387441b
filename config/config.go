// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
	"github.com/wanderai/wanderai-backend/logger"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"

	minJWTLength = 32
)

// User store backends selectable via USER_STORE.
const (
	UserStoreMemory   = "memory"
	UserStorePostgres = "postgres"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
	Version        string      `mapstructure:"VERSION"`
	JwtSecretKey   string      `mapstructure:"JWT_SECRET_KEY"`
	// TokenExpiryHours is the lifetime of issued access tokens.
	TokenExpiryHours int `mapstructure:"TOKEN_EXPIRY_HOURS"`
}

// DatabaseConfig holds PostgreSQL connection details for the optional
// postgres-backed user store.
type DatabaseConfig struct {
	Host     string `mapstructure:"HOST"`
	Port     int    `mapstructure:"PORT"`
	User     string `mapstructure:"USER"`
	Password string `mapstructure:"PASSWORD"`
	Name     string `mapstructure:"NAME"`
	SSLMode  string `mapstructure:"SSL_MODE"`
}

// URL returns a postgres:// connection URL for pgx.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// RedisConfig holds connection details for the optional place cache.
type RedisConfig struct {
	Enabled         bool   `mapstructure:"ENABLED"`
	Address         string `mapstructure:"ADDRESS"`
	Password        string `mapstructure:"PASSWORD"`
	DB              int    `mapstructure:"DB"`
	CacheTTLMinutes int    `mapstructure:"CACHE_TTL_MINUTES"`
}

// ExternalServices holds API keys and base URLs for the maps and narrative
// providers. Absent keys are a supported, silently-degraded configuration:
// the pipeline falls back to curated and generic place data.
type ExternalServices struct {
	GoogleMapsKey  string `mapstructure:"GOOGLE_MAPS_KEY"`
	MapsBaseURL    string `mapstructure:"MAPS_BASE_URL"`
	OpenRouterKey  string `mapstructure:"OPENROUTER_KEY"`
	AIBaseURL      string `mapstructure:"AI_BASE_URL"`
	AIModel        string `mapstructure:"AI_MODEL"`
	TimeoutSeconds int    `mapstructure:"TIMEOUT_SECONDS"`
}

// CurrencyConfig pins the canonical ledger currency and allows overriding the
// USD exchange rate without a rebuild.
type CurrencyConfig struct {
	Canonical string  `mapstructure:"CANONICAL"`
	USDRate   float64 `mapstructure:"USD_RATE"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server           ServerConfig     `mapstructure:"SERVER"`
	Database         DatabaseConfig   `mapstructure:"DATABASE"`
	Redis            RedisConfig      `mapstructure:"REDIS"`
	ExternalServices ExternalServices `mapstructure:"EXTERNAL_SERVICES"`
	Currency         CurrencyConfig   `mapstructure:"CURRENCY"`
	// UserStore selects the account repository backend (memory or postgres).
	UserStore string `mapstructure:"USER_STORE"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets default values, unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "1.0.0")
	v.SetDefault("SERVER.TOKEN_EXPIRY_HOURS", 168) // 7 days
	v.SetDefault("DATABASE.HOST", "localhost")
	v.SetDefault("DATABASE.PORT", 5432)
	v.SetDefault("DATABASE.USER", "postgres")
	v.SetDefault("DATABASE.PASSWORD", "")
	v.SetDefault("DATABASE.NAME", "wanderai_dev")
	v.SetDefault("DATABASE.SSL_MODE", "disable")
	v.SetDefault("REDIS.ENABLED", false)
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.CACHE_TTL_MINUTES", 30)
	v.SetDefault("EXTERNAL_SERVICES.MAPS_BASE_URL", "https://maps.googleapis.com/maps/api")
	v.SetDefault("EXTERNAL_SERVICES.AI_BASE_URL", "https://openrouter.ai/api/v1")
	v.SetDefault("EXTERNAL_SERVICES.AI_MODEL", "deepseek/deepseek-r1")
	v.SetDefault("EXTERNAL_SERVICES.TIMEOUT_SECONDS", 10)
	v.SetDefault("CURRENCY.CANONICAL", "INR")
	v.SetDefault("CURRENCY.USD_RATE", 83.25)
	v.SetDefault("USER_STORE", UserStoreMemory)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.JWT_SECRET_KEY", "JWT_SECRET_KEY"},
		{"SERVER.TOKEN_EXPIRY_HOURS", "TOKEN_EXPIRY_HOURS"},
		// Database config
		{"DATABASE.HOST", "DB_HOST"},
		{"DATABASE.PORT", "DB_PORT"},
		{"DATABASE.USER", "DB_USER"},
		{"DATABASE.PASSWORD", "DB_PASSWORD"},
		{"DATABASE.NAME", "DB_NAME"},
		{"DATABASE.SSL_MODE", "DB_SSL_MODE"},
		// Redis config
		{"REDIS.ENABLED", "REDIS_ENABLED"},
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.CACHE_TTL_MINUTES", "REDIS_CACHE_TTL_MINUTES"},
		// External services
		{"EXTERNAL_SERVICES.GOOGLE_MAPS_KEY", "GOOGLE_MAPS_API_KEY"},
		{"EXTERNAL_SERVICES.MAPS_BASE_URL", "MAPS_BASE_URL"},
		{"EXTERNAL_SERVICES.OPENROUTER_KEY", "OPENROUTER_API_KEY"},
		{"EXTERNAL_SERVICES.AI_BASE_URL", "AI_BASE_URL"},
		{"EXTERNAL_SERVICES.AI_MODEL", "AI_MODEL"},
		{"EXTERNAL_SERVICES.TIMEOUT_SECONDS", "EXTERNAL_TIMEOUT_SECONDS"},
		// Currency config
		{"CURRENCY.CANONICAL", "CURRENCY_CANONICAL"},
		{"CURRENCY.USD_RATE", "CURRENCY_USD_RATE"},
		// Store selection
		{"USER_STORE", "USER_STORE"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"server_port", cfg.Server.Port,
		"user_store", cfg.UserStore,
		"redis_cache", cfg.Redis.Enabled,
		"maps_key", logger.MaskAPIKey(cfg.ExternalServices.GoogleMapsKey),
		"openrouter_key", logger.MaskAPIKey(cfg.ExternalServices.OpenRouterKey),
	)

	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
// Missing external API keys degrade features rather than fail startup.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if len(cfg.Server.JwtSecretKey) < minJWTLength {
		return fmt.Errorf("JWT secret key must be at least %d characters long", minJWTLength)
	}
	if cfg.Server.TokenExpiryHours <= 0 {
		return fmt.Errorf("token expiry must be positive")
	}
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}

	switch cfg.UserStore {
	case UserStoreMemory:
		log.Warn("Using in-memory user store. Accounts do not survive a restart.")
	case UserStorePostgres:
		if cfg.Database.Host == "" {
			return fmt.Errorf("database host is required for the postgres user store")
		}
		if cfg.Database.User == "" {
			return fmt.Errorf("database user is required for the postgres user store")
		}
		if cfg.Database.Name == "" {
			return fmt.Errorf("database name is required for the postgres user store")
		}
	default:
		return fmt.Errorf("unknown user store backend: %s", cfg.UserStore)
	}

	if cfg.Redis.Enabled && cfg.Redis.Address == "" {
		return fmt.Errorf("redis address is required when the place cache is enabled")
	}

	if cfg.ExternalServices.TimeoutSeconds <= 0 {
		return fmt.Errorf("external service timeout must be positive")
	}
	if cfg.ExternalServices.GoogleMapsKey == "" {
		log.Warn("Google Maps API key not set. Live place lookups disabled, using curated/generic data.")
	}
	if cfg.ExternalServices.OpenRouterKey == "" {
		log.Warn("OpenRouter API key not set. AI travel insights disabled.")
	}

	if cfg.Currency.USDRate <= 0 {
		return fmt.Errorf("USD exchange rate must be positive")
	}
	if cfg.Currency.Canonical != "INR" {
		return fmt.Errorf("unsupported canonical currency: %s", cfg.Currency.Canonical)
	}

	return nil
}

// containsWildcard checks if the list of allowed origins contains the wildcard "*".
func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
