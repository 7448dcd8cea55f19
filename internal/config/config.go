package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Services  ServicesConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Worker    WorkerConfig
	Reminders RemindersConfig
	RateLimit RateLimitConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds JWT and Google OAuth settings
type AuthConfig struct {
	JWTSecret          string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string
}

// ServicesConfig holds external service configuration.
// The default mailer is optional; when ResendAPIKey is empty no fallback transport is wired.
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
	WebAppURI          string
}

// RedisConfig holds Redis connection settings shared by the task queue and the refresh lock
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers        string
	Topic          string
	ConsumerGroup  string
	WorkerPoolSize int
}

// WorkerConfig holds deferred task runner settings
type WorkerConfig struct {
	Concurrency   int
	SweepInterval time.Duration
	SweepBatch    int
}

// RemindersConfig holds the task reminder cron settings
type RemindersConfig struct {
	Cron    string
	DueDays int
}

// RateLimitConfig caps how many send requests one user may make per minute. Zero disables it.
type RateLimitConfig struct {
	SendPerMinute int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Auth.GoogleClientID, err = requireEnv("GOOGLE_CLIENT_ID"); err != nil {
		return nil, err
	}
	if cfg.Auth.GoogleClientSecret, err = requireEnv("GOOGLE_CLIENT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Auth.GoogleRedirectURI, err = requireEnv("GOOGLE_REDIRECT_URI"); err != nil {
		return nil, err
	}

	cfg.Services.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Services.DefaultEmailSender = os.Getenv("DEFAULT_EMAIL_SENDER_ADDRESS")
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "true") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = atoiEnv("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = atoiEnv("REDIS_DB", "0"); err != nil {
		return nil, err
	}

	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "crm-email-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "crm-notifications")
	if cfg.Kafka.WorkerPoolSize, err = atoiEnv("KAFKA_WORKER_POOL_SIZE", "10"); err != nil {
		return nil, err
	}

	if cfg.Worker.Concurrency, err = atoiEnv("WORKER_CONCURRENCY", "20"); err != nil {
		return nil, err
	}
	if cfg.Worker.SweepBatch, err = atoiEnv("WORKER_SWEEP_BATCH", "200"); err != nil {
		return nil, err
	}
	sweepInterval := getEnvWithDefault("WORKER_SWEEP_INTERVAL", "1m")
	cfg.Worker.SweepInterval, err = time.ParseDuration(sweepInterval)
	if err != nil {
		return nil, fmt.Errorf("failed to parse WORKER_SWEEP_INTERVAL: %w", err)
	}

	cfg.Reminders.Cron = getEnvWithDefault("TASK_REMINDER_CRON", "0 8 * * *")
	if cfg.Reminders.DueDays, err = atoiEnv("TASK_REMINDER_DAYS", "1"); err != nil {
		return nil, err
	}

	if cfg.RateLimit.SendPerMinute, err = atoiEnv("SEND_RATE_LIMIT_PER_MINUTE", "60"); err != nil {
		return nil, err
	}

	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// Addr returns the host:port pair used by asynq and go-redis
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BrokerList splits the comma separated broker setting
func (c *KafkaConfig) BrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func atoiEnv(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}
