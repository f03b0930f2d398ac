package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultAdminEmails is the built-in allow-list: registrations with one of
// these emails receive the admin role. Override with ADMIN_EMAILS.
var DefaultAdminEmails = []string{
	"bvpstudios012@gmail.com",
	"enchantedverze@gmail.com",
}

type Config struct {
	JWTSecret    string   // Required: HS256 signing secret for session tokens
	DatabaseFile string   // Optional: path to SQLite database file (default: ./chat.db)
	AdminEmails  []string // Optional: comma-separated admin allow-list (default: DefaultAdminEmails)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment, after loading a local
// .env file when one exists.
func LoadConfig() Config {
	// A missing .env file is fine; real deployments set the environment.
	_ = godotenv.Load()

	cfg := Config{
		JWTSecret:           os.Getenv("JWT_SECRET"),
		DatabaseFile:        getEnvOrDefault("CHAT_DATABASE_FILE", "chat.db"),
		AdminEmails:         DefaultAdminEmails,
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if raw := os.Getenv("ADMIN_EMAILS"); raw != "" {
		var emails []string
		for _, e := range strings.Split(raw, ",") {
			if e = strings.TrimSpace(e); e != "" {
				emails = append(emails, e)
			}
		}
		cfg.AdminEmails = emails
	}

	return cfg
}

// PrivilegedEmailPolicy returns the allow-list check used at registration
// time to decide whether an email grants the admin role.
func (c Config) PrivilegedEmailPolicy() func(string) bool {
	set := make(map[string]struct{}, len(c.AdminEmails))
	for _, e := range c.AdminEmails {
		set[e] = struct{}{}
	}
	return func(email string) bool {
		_, ok := set[email]
		return ok
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
