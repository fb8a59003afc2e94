package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Server ServerConfig
	Auth   AuthConfig
	Store  StoreConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	LogLevel       string
	TrustedProxies []string
}

type AuthConfig struct {
	AdminUsername     string
	AdminPasswordHash string
	BcryptCost        int

	MaxLoginAttempts int
	LockoutWindow    time.Duration

	SessionIdleTimeout   time.Duration
	SessionMaxLifetime   time.Duration
	SessionCheckInterval time.Duration
}

type StoreConfig struct {
	Backend       string // "memory", "sqlite" or "redis"
	Path          string // sqlite database file
	RedisAddr     string
	RedisPassword string
	KeyPrefix     string
	EncryptionKey []byte // optional, enables the encrypting wrapper
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	adminHash := getEnv("ADMIN_PASSWORD_HASH", "")
	if adminHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}
	if err := validateBcryptHash(adminHash); err != nil {
		return nil, err
	}

	env := getEnv("ENV", "development")

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			Env:            env,
			LogLevel:       getEnv("LOG_LEVEL", "info"),
			TrustedProxies: parseList(getEnv("TRUSTED_PROXIES", "")),
		},
		Auth: AuthConfig{
			AdminUsername:        getEnv("ADMIN_USERNAME", "admin"),
			AdminPasswordHash:    adminHash,
			BcryptCost:           getEnvAsInt("BCRYPT_COST", 12),
			MaxLoginAttempts:     getEnvAsInt("MAX_LOGIN_ATTEMPTS", 5),
			LockoutWindow:        getEnvAsDuration("LOCKOUT_WINDOW", 15*time.Minute),
			SessionIdleTimeout:   getEnvAsDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
			SessionMaxLifetime:   getEnvAsDuration("SESSION_MAX_LIFETIME", 8*time.Hour),
			SessionCheckInterval: getEnvAsDuration("SESSION_CHECK_INTERVAL", 60*time.Second),
		},
		Store: StoreConfig{
			Backend:       getEnv("STORE_BACKEND", "sqlite"),
			Path:          getEnv("STORE_PATH", "academy.db"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			KeyPrefix:     getEnv("STORE_KEY_PREFIX", "academy"),
		},
	}

	switch cfg.Store.Backend {
	case "memory", "sqlite", "redis":
	default:
		return nil, fmt.Errorf("STORE_BACKEND must be one of memory, sqlite, redis (got %q)", cfg.Store.Backend)
	}

	if encKey := getEnv("STORE_ENCRYPTION_KEY", ""); encKey != "" {
		key, err := base64.StdEncoding.DecodeString(encKey)
		if err != nil {
			return nil, fmt.Errorf("STORE_ENCRYPTION_KEY must be base64: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("STORE_ENCRYPTION_KEY must decode to 32 bytes (got %d)", len(key))
		}
		cfg.Store.EncryptionKey = key
	}

	if cfg.Auth.MaxLoginAttempts < 1 {
		return nil, fmt.Errorf("MAX_LOGIN_ATTEMPTS must be at least 1")
	}
	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	return cfg, nil
}

// validateBcryptHash rejects values that are clearly not bcrypt
// digests, so a plaintext password pasted into the env is caught at
// startup rather than at first login.
func validateBcryptHash(hash string) error {
	if !strings.HasPrefix(hash, "$2a$") && !strings.HasPrefix(hash, "$2b$") && !strings.HasPrefix(hash, "$2y$") {
		return fmt.Errorf("ADMIN_PASSWORD_HASH must be a bcrypt hash, not a plaintext password")
	}
	if len(hash) != 60 {
		return fmt.Errorf("ADMIN_PASSWORD_HASH has unexpected length %d (bcrypt hashes are 60 characters)", len(hash))
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultVal
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
