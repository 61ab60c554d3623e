package config

import (
	"os"
	"strconv"
	"strings"
)

type DatabaseConfig struct {
	Driver   string // mysql|postgres|sqlite
	Host     string
	Port     string
	Database string
	Username string
	Password string
	SSLMode  string
	Path     string // sqlite only
	DebugSQL bool
}

type MailConfig struct {
	Host          string
	Port          int
	Username      string
	Password      string
	From          string // e.g. "Crop Procurement <no-reply@your.org>"
	SkipTLSVerify bool
}

// Enabled reports whether enough SMTP settings exist to send mail.
func (m MailConfig) Enabled() bool {
	return m.Host != "" && m.From != ""
}

type Config struct {
	Port           string
	GinMode        string
	Environment    string
	JWTSecret      string
	AllowedOrigins []string
	AppBaseURL     string
	Database       DatabaseConfig
	Mail           MailConfig
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads configuration from the environment. Call godotenv.Load first
// when a .env file should be honoured.
func Load() *Config {
	environment := strings.ToLower(getEnv("ENVIRONMENT", "development"))

	return &Config{
		Port:           getEnv("SERVER_PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		Environment:    environment,
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		AppBaseURL:     strings.TrimSpace(os.Getenv("APP_BASE_URL")),
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "mysql")),
			Host:     getEnv("DB_HOST", "127.0.0.1"),
			Port:     os.Getenv("DB_PORT"),
			Database: getEnv("DB_DATABASE", "crop_procurement"),
			Username: os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "crop-procurement.db"),
			DebugSQL: strings.ToLower(os.Getenv("DEBUG_SQL")) == "true",
		},
		Mail: MailConfig{
			Host:          os.Getenv("SMTP_HOST"),
			Port:          getEnvInt("SMTP_PORT", 587),
			Username:      os.Getenv("SMTP_USER"),
			Password:      os.Getenv("SMTP_PASS"),
			From:          os.Getenv("SMTP_FROM"),
			SkipTLSVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1",
		},
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v == 0 {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
