package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds every value the process reads from its environment. It is
// loaded once at startup and injected where needed; nothing reads the
// environment after that point.
type Config struct {
	Port        string
	DatabaseURL string

	// AdminToken gates every mutating request. Compared byte-for-byte
	// against the Authorization header; an empty value fails closed.
	AdminToken string

	// OwnerEmail receives review notifications and contact-form mail.
	OwnerEmail string

	ResendAPIKey    string
	ResendFromEmail string

	S3Bucket        string
	S3Region        string
	S3Endpoint      string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	AcceptedOrigins []string
}

func Load() *Config {
	return &Config{
		Port:        getString("PORT", "8080"),
		DatabaseURL: getString("DATABASE_URL", ""),

		AdminToken: getString("ADMIN_TOKEN", ""),
		OwnerEmail: getString("OWNER_EMAIL", ""),

		ResendAPIKey:    getString("RESEND_API_KEY", ""),
		ResendFromEmail: getString("RESEND_FROM_EMAIL", ""),

		S3Bucket:        getString("S3_BUCKET", "portfolio-media"),
		S3Region:        getString("S3_REGION", "us-east-1"),
		S3Endpoint:      getString("S3_ENDPOINT", ""),
		S3AccessKey:     getString("S3_ACCESS_KEY", ""),
		S3SecretKey:     getString("S3_SECRET_KEY", ""),
		S3PublicBaseURL: getString("S3_PUBLIC_BASE_URL", ""),

		ReadTimeout:  time.Duration(getInt("READ_TIMEOUT_SECONDS", 180)) * time.Second,
		WriteTimeout: time.Duration(getInt("WRITE_TIMEOUT_SECONDS", 180)) * time.Second,
		IdleTimeout:  time.Duration(getInt("IDLE_TIMEOUT_SECONDS", 180)) * time.Second,

		AcceptedOrigins: splitList(getString("ACCEPTED_ORIGINS", "*")),
	}
}

func getString(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	s, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return asInt
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
