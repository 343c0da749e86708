// Package config provides configuration management for the coffee builder service.
package config

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Cache    CacheConfig
	Pricing  PricingConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// LogConfig controls the global zerolog logger.
type LogConfig struct {
	Level  string
	Pretty bool
}

// CacheConfig sizes the in-memory session store.
type CacheConfig struct {
	// Size is the total session capacity, split across shards. Shards evict
	// independently, so a hot shard can drop sessions before Size is reached.
	Size int
	TTL  time.Duration
	// Shards is capped at Size so no shard is empty.
	Shards int
}

// PricingConfig holds the reference price table settings.
type PricingConfig struct {
	// BasePrice is the plain beverage price of the reference catalog.
	BasePrice int
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled      bool
	APIKeys      map[string]bool
	JWTSecretKey string
	JWTIssuer    string
	TokenTTL     time.Duration
}

// KeyList returns the configured API keys in sorted order.
func (a AuthConfig) KeyList() []string {
	if len(a.APIKeys) == 0 {
		return nil
	}
	keys := make([]string, 0, len(a.APIKeys))
	for k := range a.APIKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load reads the optional env file named by ENV_FILE (default ".env") and
// then builds a Config from the environment. Variables already set in the
// environment take precedence over the file.
func Load() Config {
	loadEnvFile(getEnv("ENV_FILE", ".env"))

	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Cache: CacheConfig{
			Size:   getEnvInt("CACHE_SIZE", 10000),
			TTL:    getEnvDuration("CACHE_TTL", 30*time.Minute),
			Shards: getEnvInt("CACHE_SHARDS", 16),
		},
		Pricing: PricingConfig{
			BasePrice: getEnvInt("BASE_PRICE", 120),
		},
		Auth: AuthConfig{
			Enabled:      getEnvBool("AUTH_ENABLED", false),
			APIKeys:      parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
			JWTIssuer:    getEnv("JWT_ISSUER", "coffee-builder"),
			TokenTTL:     getEnvDuration("JWT_TOKEN_TTL", time.Hour),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "coffee_builder"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func loadEnvFile(path string) {
	err := godotenv.Load(path)
	if err == nil {
		log.Debug().Str("file", path).Msg("Loaded environment file")
		return
	}
	if !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Str("file", path).Msg("Failed to load environment file")
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

// parseCORSOrigins always allows the local front-end dev server.
func parseCORSOrigins(s string) []string {
	defaults := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
