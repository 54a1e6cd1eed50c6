package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig holds environment driven configuration values.
type AppConfig struct {
	AppPort   string
	JWTSecret string
	TokenTTL  time.Duration

	GinMode        string
	AllowedOrigins []string

	RateLimitPerMinute int

	// ActivityLogMax bounds the in-memory activity log; 0 keeps it unbounded.
	ActivityLogMax int

	// Logging
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

// Load reads configuration from environment variables, filling defaults for
// anything unset. It is safe to call more than once.
func Load() AppConfig {
	cfg := AppConfig{
		AppPort:            getEnv("APP_PORT", "3001"),
		JWTSecret:          getEnv("JWT_SECRET", "ott-share-hub-secret-key-2024"),
		TokenTTL:           7 * 24 * time.Hour,
		GinMode:            getEnv("GIN_MODE", "release"),
		AllowedOrigins:     readListEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		ActivityLogMax:     getEnvInt("ACTIVITY_LOG_MAX", 0),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogPath:            getEnv("LOG_PATH", ""),
		LogMaxSizeMB:       getEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups:      getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays:      getEnvInt("LOG_MAX_AGE_DAYS", 7),
		LogCompress:        getEnv("LOG_COMPRESS", "") == "true",
	}
	if v := getEnv("TOKEN_TTL_HOURS", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TokenTTL = time.Duration(n) * time.Hour
		}
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func readListEnv(key string, defaults []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaults
	}
	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return defaults
	}
	return items
}
