package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr              = ":8080"
	defaultJWTSecret             = "change-me-jwt-secret"
	defaultJWTAccessTTL          = "24h"
	defaultBranchCacheTTL        = "5m"
	defaultKafkaBookingTopic     = "booking-events"
	defaultKafkaGroupID          = "notification-worker"
	defaultNotificationRetention = "720h"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string

	JWTSecret    string
	JWTAccessTTL time.Duration

	Redis RedisConfig
	Kafka KafkaConfig

	BranchCacheTTL        time.Duration
	NotificationRetention time.Duration
	CORSAllowedOrigins    []string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Brokers      []string
	BookingTopic string
	GroupID      string
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// Load reads configuration from the environment. A .env file in the working directory is
// applied first when present; variables already set in the environment win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = strings.TrimSpace(getEnv("HTTP_ADDR", defaultHTTPAddr))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}
	cfg.BranchCacheTTL, err = parseDurationEnv("BRANCH_CACHE_TTL", defaultBranchCacheTTL)
	if err != nil {
		return nil, err
	}
	cfg.NotificationRetention, err = parseDurationEnv("NOTIFICATION_RETENTION", defaultNotificationRetention)
	if err != nil {
		return nil, err
	}

	cfg.Redis.Addr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.DB, err = parseIntEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	cfg.Kafka.Brokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.Kafka.BookingTopic = strings.TrimSpace(getEnv("KAFKA_BOOKING_TOPIC", defaultKafkaBookingTopic))
	cfg.Kafka.GroupID = strings.TrimSpace(getEnv("KAFKA_GROUP_ID", defaultKafkaGroupID))

	cfg.CORSAllowedOrigins = splitList(os.Getenv("CORS_ALLOWED_ORIGINS"))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.BranchCacheTTL <= 0 {
		return fmt.Errorf("BRANCH_CACHE_TTL must be > 0")
	}
	if cfg.NotificationRetention <= 0 {
		return fmt.Errorf("NOTIFICATION_RETENTION must be > 0")
	}
	if cfg.Kafka.Enabled() && cfg.Kafka.BookingTopic == "" {
		return fmt.Errorf("KAFKA_BOOKING_TOPIC must not be empty when KAFKA_BROKERS is set")
	}

	if IsProdLike(cfg.AppEnv) && isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
