package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App     AppConfig
	Storage StorageConfig
	Session SessionConfig
	Redis   RedisConfig
	CORS    CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// StorageConfig holds file layout roots for the document store and audit logs.
// The store is plain JSON files on disk; there is no database.
type StorageConfig struct {
	// DataRoot is the corpus root: one directory per work.
	DataRoot string
	// LogsDir holds the append-only review audit logs.
	LogsDir string
}

type SessionConfig struct {
	// TTLHours is the session lifetime, also used for the cookie max age.
	TTLHours int
	// CookieSecure should be true when serving over HTTPS.
	CookieSecure bool
}

type RedisConfig struct {
	// Host empty => in-memory session store (single process).
	Host     string
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Corpus API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "v1"),
		},
		Storage: StorageConfig{
			DataRoot: getEnv("DATA_ROOT", "./data"),
			LogsDir:  getEnv("LOGS_DIR", "./logs"),
		},
		Session: SessionConfig{
			TTLHours:     getEnvInt("SESSION_TTL_HOURS", 24),
			CookieSecure: getEnvBool("SESSION_COOKIE_SECURE", false),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"https://satsangee.org",
				"http://satsangee.org",
			}),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.Storage.DataRoot == "" {
		return fmt.Errorf("DATA_ROOT must not be empty")
	}
	if c.Session.TTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}

	// Production phải serve cookies qua HTTPS
	if c.App.Environment == "production" && !c.Session.CookieSecure {
		fmt.Println("WARNING: SESSION_COOKIE_SECURE=false in production - session cookies are not protected")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
