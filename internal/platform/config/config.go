package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	BaseCurrency   string
	RateLimit      string
	MigrationsPath string
	CORSOrigins    []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BASE_CURRENCY", "CNY")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("CORS_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.BaseCurrency = strings.ToUpper(viper.GetString("BASE_CURRENCY"))
	if len(cfg.BaseCurrency) != 3 {
		log.Printf("Warning: Invalid value for BASE_CURRENCY ('%s'). Defaulting to CNY.\n", cfg.BaseCurrency)
		cfg.BaseCurrency = "CNY"
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.CORSOrigins = strings.Split(viper.GetString("CORS_ORIGINS"), ",")

	return cfg, nil
}
