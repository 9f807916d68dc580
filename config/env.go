package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTPConfig
	Auth     AuthConfig
	Log      LogConfig
	SeedDemo bool
}

type HTTPConfig struct {
	Host      string
	Port      string
	GinMode   string
	RateLimit string
}

type AuthConfig struct {
	SessionSecret string
	SessionMaxAge int
	SecureCookies bool
	JWTSecret     string
	TokenTTLHours int
}

type LogConfig struct {
	Level string
	Env   string
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	sessionMaxAge, _ := strconv.Atoi(getEnv("SESSION_MAX_AGE", "86400"))
	tokenTTL, _ := strconv.Atoi(getEnv("TOKEN_TTL_HOURS", "24"))
	secureCookies, _ := strconv.ParseBool(getEnv("SECURE_COOKIES", "false"))
	seedDemo, _ := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "false"))

	return Config{
		HTTP: HTTPConfig{
			Host:      getEnv("HTTP_HOST", "0.0.0.0"),
			Port:      getEnv("HTTP_PORT", "8080"),
			GinMode:   getEnv("GIN_MODE", "debug"),
			RateLimit: getEnv("AUTH_RATE_LIMIT", "10-M"),
		},
		Auth: AuthConfig{
			SessionSecret: getEnv("SESSION_SECRET", "terratrace-dev-session-secret"),
			SessionMaxAge: sessionMaxAge,
			SecureCookies: secureCookies,
			JWTSecret:     getEnv("JWT_SECRET", "terratrace-dev-jwt-secret"),
			TokenTTLHours: tokenTTL,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			Env:   getEnv("APP_ENV", "development"),
		},
		SeedDemo: seedDemo,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
