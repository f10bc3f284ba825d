package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"hr-portal/internal/shared/connection"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	Port     string
	Timezone string

	DB connection.PostgresConfig

	RedisAddr   string
	KafkaBroker string

	JWTSecret        string
	JWTAccessMinutes int
	JWTRefreshHours  int

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	MailerURL            string
	NotifyTimeoutSeconds int
	NotifyQueueSize      int

	Seed HRSeed
}

// HRSeed describes the HR account created at startup when its email is not
// registered yet. An empty Email disables seeding.
type HRSeed struct {
	Name       string
	Email      string
	Password   string
	Department string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:   getEnv("APP_ENV", "local"),
		Port:     getEnv("PORT", "3000"),
		Timezone: getEnv("APP_TIMEZONE", "Local"),
		DB: connection.PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		KafkaBroker:          os.Getenv("KAFKA_BROKER"),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTAccessMinutes:     getEnvInt("JWT_ACCESS_MINUTES", 15),
		JWTRefreshHours:      getEnvInt("JWT_REFRESH_HOURS", 168),
		SMTPHost:             os.Getenv("SMTP_HOST"),
		SMTPPort:             getEnvInt("SMTP_PORT", 587),
		SMTPUser:             os.Getenv("SMTP_USER"),
		SMTPPass:             os.Getenv("SMTP_PASS"),
		SMTPFrom:             os.Getenv("SMTP_FROM"),
		MailerURL:            os.Getenv("MAILER_URL"),
		NotifyTimeoutSeconds: getEnvInt("NOTIFY_TIMEOUT_SECONDS", 10),
		NotifyQueueSize:      getEnvInt("NOTIFY_QUEUE_SIZE", 100),
		Seed: HRSeed{
			Name:       getEnv("HR_SEED_NAME", "HR Admin"),
			Email:      os.Getenv("HR_SEED_EMAIL"),
			Password:   os.Getenv("HR_SEED_PASSWORD"),
			Department: getEnv("HR_SEED_DEPARTMENT", "Human Resources"),
		},
	}

	missing := []string{}
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if cfg.DB.Name == "" {
		missing = append(missing, "DB_NAME")
	}
	if cfg.Seed.Email != "" && cfg.Seed.Password == "" {
		missing = append(missing, "HR_SEED_PASSWORD")
	}

	if len(missing) > 0 {
		return cfg, errors.New("missing env: " + strings.Join(missing, ", "))
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// Location resolves APP_TIMEZONE, falling back to the host zone.
func (c Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c Config) AccessTTL() time.Duration {
	return time.Duration(c.JWTAccessMinutes) * time.Minute
}

func (c Config) RefreshTTL() time.Duration {
	return time.Duration(c.JWTRefreshHours) * time.Hour
}

func (c Config) NotifyTimeout() time.Duration {
	return time.Duration(c.NotifyTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
