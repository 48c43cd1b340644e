package config

import (
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

// Config captures runtime configuration for the portfolio server.
type Config struct {
	Port          string
	Mode          string // gin mode: debug or release
	DBPath        string
	SessionSecret string
	AdminUsername string
	AdminPassword string
	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPass      string
	ToEmail       string
	RevealStagger time.Duration
	VisitorMaxAge time.Duration
}

// Load reads environment variables and applies development defaults.
// A .env file in the working directory is picked up automatically.
func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		Mode:          getEnv("GIN_MODE", "debug"),
		DBPath:        getEnv("DB_PATH", "portfolio.db"),
		SessionSecret: getEnv("SESSION_SECRET", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPass:      getEnv("SMTP_PASS", ""),
		ToEmail:       getEnv("TO_EMAIL", ""),
		RevealStagger: getDurationEnv("REVEAL_STAGGER", 100*time.Millisecond),
		VisitorMaxAge: getDurationEnv("VISITOR_MAX_AGE", 12*30*24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
