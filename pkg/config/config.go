package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// DataFile is the JSON document the entity store persists to. The same
	// layout is used for backup export/import.
	DataFile string

	// AllowNegativeStock keeps the legacy oversell behavior when true;
	// otherwise checkouts that would drive stock negative are rejected.
	AllowNegativeStock bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Operator credentials; the password is stored as a bcrypt hash.
	AdminUsername     string
	AdminPasswordHash string

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DATA_FILE", "data/credistore.json")
	viper.SetDefault("ALLOW_NEGATIVE_STOCK", true)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "credistore-backend")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	// bcrypt hash of "admin"; override in any real deployment.
	viper.SetDefault("ADMIN_PASSWORD_HASH", "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.DataFile = viper.GetString("DATA_FILE")
	cfg.AllowNegativeStock = viper.GetBool("ALLOW_NEGATIVE_STOCK")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	cfg.JWTExpiryDuration = viper.GetDuration("JWT_EXPIRY_DURATION")
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.AdminUsername = viper.GetString("ADMIN_USERNAME")
	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
