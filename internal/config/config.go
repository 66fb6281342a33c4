package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	// Server
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`

	// Supabase
	SupabaseURL           string `mapstructure:"SUPABASE_URL"`
	SupabaseServiceKey    string `mapstructure:"SUPABASE_SERVICE_KEY"`
	SupabaseJWTSecret     string `mapstructure:"SUPABASE_JWT_SECRET"`
	SupabaseStorageBucket string `mapstructure:"SUPABASE_STORAGE_BUCKET"`

	// Database
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Business limits
	DailyImageQuota int `mapstructure:"DAILY_IMAGE_QUOTA"`

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
}

// Load reads configuration from an optional app.env file and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("SUPABASE_STORAGE_BUCKET", "portfolio-images")
	v.SetDefault("DAILY_IMAGE_QUOTA", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.AutomaticEnv()
	for _, key := range []string{
		"PORT", "ENVIRONMENT",
		"SUPABASE_URL", "SUPABASE_SERVICE_KEY", "SUPABASE_JWT_SECRET", "SUPABASE_STORAGE_BUCKET",
		"DATABASE_URL", "DAILY_IMAGE_QUOTA", "LOG_LEVEL", "LOG_FORMAT",
	} {
		_ = v.BindEnv(key)
	}

	// Config file is optional; env vars alone are enough.
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required")
	}
	if c.SupabaseJWTSecret == "" {
		return fmt.Errorf("SUPABASE_JWT_SECRET is required")
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.DailyImageQuota <= 0 {
		return fmt.Errorf("DAILY_IMAGE_QUOTA must be positive")
	}
	return nil
}
