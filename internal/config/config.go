package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	// BaseURL is the public URL of this storefront, used for payment
	// success/cancel callback links.
	BaseURL    string
	Storefront StorefrontConfig
	LogLevel   string
}

type StorefrontConfig struct {
	APIURL string
	APIKey string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("BASE_URL", "http://localhost:3000")
	viper.SetDefault("STOREFRONT_API_URL", "http://localhost:3000/api/storefront/v1")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		BaseURL:     getEnvOrViper("BASE_URL", "http://localhost:3000"),
		Storefront: StorefrontConfig{
			APIURL: getEnvOrViper("STOREFRONT_API_URL", "http://localhost:3000/api/storefront/v1"),
			APIKey: getEnvOrViper("STOREFRONT_API_KEY", ""),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Storefront.APIKey == "" {
		return nil, fmt.Errorf("STOREFRONT_API_KEY is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
