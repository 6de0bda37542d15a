package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

// Defaults applied when a key is not set.
const (
	DefaultHTTPPort            = "8080"
	DefaultDBSslMode           = "disable"
	DefaultLogLevel            = "info"
	DefaultHTTPShutdownTimeout = 10 * time.Second
	DefaultDBStatementTimeout  = 5 * time.Second
	DefaultAuditSchedule       = "0 * * * * *"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	LogLevel            slog.Level
	HTTPShutdownTimeout time.Duration
	// DBStatementTimeout bounds every API request context. Zero disables it.
	DBStatementTimeout time.Duration
	// AuditSchedule is a cron spec with seconds. Empty disables the audit job.
	AuditSchedule  string
	SeedOnStart    bool
	TracingEnabled bool
}

// LoadConfig reads the configuration from the environment after loading the
// given .env files. Missing files are ignored and variables already present in
// the environment take precedence over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := Config{
		HTTPPort:   getEnv("HTTP_PORT", DefaultHTTPPort),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  getEnv("DB_SSLMODE", DefaultDBSslMode),
	}

	// An explicitly empty AUDIT_SCHEDULE turns the job off.
	cfg.AuditSchedule = DefaultAuditSchedule
	if v, ok := os.LookupEnv("AUDIT_SCHEDULE"); ok {
		cfg.AuditSchedule = v
	}

	var errList []error
	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", DefaultLogLevel))); err != nil {
		errList = append(errList, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	errList = append(errList,
		parseDuration("HTTP_SHUTDOWN_TIMEOUT", DefaultHTTPShutdownTimeout, &cfg.HTTPShutdownTimeout),
		parseDuration("DB_STATEMENT_TIMEOUT", DefaultDBStatementTimeout, &cfg.DBStatementTimeout),
		parseBool("SEED_ON_START", false, &cfg.SeedOnStart),
		parseBool("TRACING_ENABLED", false, &cfg.TracingEnabled),
	)
	if err := errors.Join(errList...); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// EchoLogLevel maps LogLevel onto the levels of echo's logger.
func (c Config) EchoLogLevel() log.Lvl {
	switch {
	case c.LogLevel <= slog.LevelDebug:
		return log.DEBUG
	case c.LogLevel <= slog.LevelInfo:
		return log.INFO
	case c.LogLevel <= slog.LevelWarn:
		return log.WARN
	default:
		return log.ERROR
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration, dst *time.Duration) error {
	*dst = fallback
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if d < 0 {
		return fmt.Errorf("%s: must not be negative, got %s", key, v)
	}
	*dst = d
	return nil
}

func parseBool(key string, fallback bool, dst *bool) error {
	*dst = fallback
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}
