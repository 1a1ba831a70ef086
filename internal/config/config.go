package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Database    DatabaseConfig
	Pipeline    PipelineConfig
	Log         LogConfig
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        string
}

type PipelineConfig struct {
	MaxUploadBytes      int64
	StoreTimeout        time.Duration
	ClassifierModelPath string
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
	BreakerHalfOpenSucc int
}

type LogConfig struct {
	Level  string
	Format string
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load() *Config {
	return LoadFrom(".env")
}

// LoadFrom is Load with an explicit dotenv path. A missing file is not an error.
func LoadFrom(envFile string) *Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to load env file", "path", envFile, "error", err)
		}
	}

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "ledger_user"),
			Password:        getEnv("DB_PASSWORD", "ledger_password"),
			Name:            getEnv("DB_NAME", "ledger_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			LogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
		},
		Pipeline: PipelineConfig{
			MaxUploadBytes:      int64(getIntEnv("PIPELINE_MAX_UPLOAD_BYTES", 10*1024*1024)),
			StoreTimeout:        getDurationEnv("PIPELINE_STORE_TIMEOUT", 10*time.Second),
			ClassifierModelPath: getEnv("CLASSIFIER_MODEL_PATH", "models/tx_category_model.gob"),
			BreakerMaxFailures:  getIntEnv("CLASSIFIER_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("CLASSIFIER_BREAKER_RESET_TIMEOUT", 30*time.Second),
			BreakerHalfOpenSucc: getIntEnv("CLASSIFIER_BREAKER_HALF_OPEN_SUCCESSES", 2),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// SlogLevel maps the configured level name to a slog level, defaulting to info.
func (c *LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger. Format "text" selects the text
// handler, anything else JSON.
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
