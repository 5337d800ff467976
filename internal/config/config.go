package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "secret_jwt_key"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// MongoDB configuration
	MongoURI        string `mapstructure:"MONGO_URI"`
	MongoUsername   string `mapstructure:"MONGO_USERNAME"`
	MongoPassword   string `mapstructure:"MONGO_PASSWORD"`
	MasterDB        string `mapstructure:"MASTER_DB"`
	MongoTimeoutSec int    `mapstructure:"MONGO_TIMEOUT_SEC"`

	// JWT configuration
	JWTSecret                string `mapstructure:"JWT_SECRET"`
	JWTAlgorithm             string `mapstructure:"JWT_ALGORITHM"`
	AccessTokenExpireMinutes int    `mapstructure:"ACCESS_TOKEN_EXPIRE_MINUTES"`
	BcryptCost               int    `mapstructure:"BCRYPT_COST"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Lifecycle journal (Postgres). Empty disables the journal.
	JournalDatabaseURL string `mapstructure:"JOURNAL_DATABASE_URL"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "8000")
	v.SetDefault("LOG_LEVEL", "info")

	// MongoDB defaults
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_USERNAME", "")
	v.SetDefault("MONGO_PASSWORD", "")
	v.SetDefault("MASTER_DB", "org_master_db")
	v.SetDefault("MONGO_TIMEOUT_SEC", 10)

	// JWT defaults
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ALGORITHM", "HS256")
	v.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 60)
	v.SetDefault("BCRYPT_COST", 10)

	// CORS defaults
	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	v.SetDefault("JOURNAL_DATABASE_URL", "")
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	switch config.JWTAlgorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("JWT_ALGORITHM %q is not supported", config.JWTAlgorithm)
	}

	if config.AccessTokenExpireMinutes <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive")
	}

	if config.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}

	if config.MasterDB == "" {
		return fmt.Errorf("master database name is required")
	}

	if config.MongoTimeoutSec <= 0 {
		config.MongoTimeoutSec = 10
	}

	return nil
}

// AccessTokenTTL returns the lifetime of issued bearer tokens
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// MongoTimeout returns the per-operation timeout for store calls
func (c *Config) MongoTimeout() time.Duration {
	return time.Duration(c.MongoTimeoutSec) * time.Second
}

// JournalEnabled reports whether the Postgres lifecycle journal is configured
func (c *Config) JournalEnabled() bool {
	return c.JournalDatabaseURL != ""
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
