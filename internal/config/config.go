package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	Env            string
	Port           string
	AllowedOrigins []string
	Postgres       PostgresConfig
	Meta           MetaConfig
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	TimeZone string
}

// MetaConfig holds the Meta (Facebook) Conversions API credentials. An empty
// PixelID disables the tracking routes.
type MetaConfig struct {
	PixelID       string
	AccessToken   string
	APIVersion    string
	TestEventCode string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		Env:            getEnvOrDefault("APP_ENV", "development"),
		Port:           getEnvOrDefault("PORT", "8080"),
		AllowedOrigins: splitNonEmpty(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "")),
		Postgres: PostgresConfig{
			Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
			Port:     getEnvOrDefault("POSTGRES_PORT", "5432"),
			User:     getEnvOrDefault("POSTGRES_USER", ""),
			Password: getEnvOrDefault("POSTGRES_PASSWORD", ""),
			DBName:   getEnvOrDefault("POSTGRES_DB", "shopno"),
			SSLMode:  getEnvOrDefault("POSTGRES_SSLMODE", "disable"),
			TimeZone: getEnvOrDefault("POSTGRES_TIMEZONE", "Asia/Dhaka"),
		},
		Meta: MetaConfig{
			PixelID:       getEnvOrDefault("META_PIXEL_ID", ""),
			AccessToken:   getEnvOrDefault("META_ACCESS_TOKEN", ""),
			APIVersion:    getEnvOrDefault("META_API_VERSION", "v18.0"),
			TestEventCode: getEnvOrDefault("META_TEST_EVENT_CODE", ""),
		},
	}
}

func splitNonEmpty(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
