package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL       string
	StoreDriver       string
	DBLogLevel        string
	JWTSecret         string
	PasscodeHash      string
	Port              string
	CORSOrigins       string
	FCMServiceAccount string
	Timezone          string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DatabaseURL:       getEnv("DATABASE_URL", "goals.db"),
		StoreDriver:       getEnv("STORE_DRIVER", "gorm"),
		DBLogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		PasscodeHash:      getEnv("PASSCODE_HASH", ""),
		Port:              getEnv("PORT", "8080"),
		CORSOrigins:       getEnv("CORS_ORIGINS", "*"),
		FCMServiceAccount: getEnv("FCM_SERVICE_ACCOUNT", ""),
		Timezone:          getEnv("TIMEZONE", "UTC"),
	}
}

// Location resolves Timezone, falling back to UTC for unknown zone names.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("config: unknown TIMEZONE %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}

// AuthEnabled reports whether routes should require a session token.
func (c *Config) AuthEnabled() bool {
	return c.PasscodeHash != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
