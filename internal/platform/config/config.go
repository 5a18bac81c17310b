package config

import (
	"fmt"
	"log"

	"github.com/daftari-app/daftari/internal/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Persistence
	StorageDriver string
	DataDir       string
	SQLitePath    string

	// Session tokens
	SessionSecret string
	SessionIssuer string

	// Login brute-force gate, in ulule/limiter format (e.g. "5-M").
	LoginRateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_DRIVER", DriverFile)
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("SQLITE_PATH", "data/daftari.db")
	viper.SetDefault("SESSION_ISSUER", "daftari")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		StorageDriver:  viper.GetString("STORAGE_DRIVER"),
		DataDir:        viper.GetString("DATA_DIR"),
		SQLitePath:     viper.GetString("SQLITE_PATH"),
		SessionSecret:  viper.GetString("SESSION_SECRET"),
		SessionIssuer:  viper.GetString("SESSION_ISSUER"),
		LoginRateLimit: viper.GetString("LOGIN_RATE_LIMIT"),
	}

	if cfg.StorageDriver != DriverFile && cfg.StorageDriver != DriverSQLite {
		log.Printf("Warning: unknown STORAGE_DRIVER %q, falling back to %q.\n", cfg.StorageDriver, DriverFile)
		cfg.StorageDriver = DriverFile
	}

	if cfg.SessionSecret == "" {
		secret, err := utils.GenerateSecureRandomString(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		cfg.SessionSecret = secret
		log.Println("Warning: SESSION_SECRET not set. Generated an ephemeral secret; sessions will not survive a restart.")
	}

	return cfg, nil
}
