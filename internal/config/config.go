package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvEnv           = "WORKOUT_ENV"
	EnvAddr          = "WORKOUT_ADDR"
	EnvDBPath        = "WORKOUT_DB_PATH"
	EnvCSRFKey       = "WORKOUT_CSRF_KEY"
	EnvLogFile       = "WORKOUT_LOG_FILE"
	EnvLogLevel      = "WORKOUT_LOG_LEVEL"
	EnvRateLimit     = "WORKOUT_RATE_LIMIT"
	EnvResendKey     = "WORKOUT_RESEND_KEY"
	EnvResendFrom    = "WORKOUT_RESEND_FROM"
	EnvSlowQueryMs   = "WORKOUT_SLOW_QUERY_MS"
	EnvSlowRequestMs = "WORKOUT_SLOW_REQUEST_MS"
	EnvTelemetry     = "WORKOUT_TELEMETRY"
)

// Defaults used when a variable is unset.
const (
	DefaultAddr      = ":8080"
	DefaultDBPath    = "workout.db"
	DefaultLogLevel  = "info"
	DefaultRateLimit = 10
)

// Telemetry exporters.
const (
	TelemetryOff    = "off"
	TelemetryStdout = "stdout"
)

// Config is the process configuration.
type Config struct {
	Env         string
	Addr        string
	DBPath      string
	CSRFKeyHex  string
	LogFile     string
	LogLevel    string
	RateLimit   int
	ResendKey   string
	ResendFrom  string
	SlowQuery   time.Duration
	SlowRequest time.Duration
	Telemetry   string
}

// Production reports whether the app runs in production mode.
func (c Config) Production() bool {
	return c.Env == "production"
}

// Load reads an optional .env file from the working directory, then the environment.
// Variables already set in the environment win over the file.
// PRE: none
// POST: returns a Config with defaults applied, or an error naming the bad variable
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Env:        getenv(EnvEnv),
		Addr:       orDefault(getenv(EnvAddr), DefaultAddr),
		DBPath:     orDefault(getenv(EnvDBPath), DefaultDBPath),
		CSRFKeyHex: getenv(EnvCSRFKey),
		LogFile:    getenv(EnvLogFile),
		LogLevel:   strings.ToLower(orDefault(getenv(EnvLogLevel), DefaultLogLevel)),
		ResendKey:  getenv(EnvResendKey),
		ResendFrom: getenv(EnvResendFrom),
		Telemetry:  strings.ToLower(orDefault(getenv(EnvTelemetry), TelemetryOff)),
	}

	var err error
	if cfg.RateLimit, err = positiveInt(getenv, EnvRateLimit, DefaultRateLimit); err != nil {
		return Config{}, err
	}
	slowQuery, err := positiveInt(getenv, EnvSlowQueryMs, 0)
	if err != nil {
		return Config{}, err
	}
	slowRequest, err := positiveInt(getenv, EnvSlowRequestMs, 0)
	if err != nil {
		return Config{}, err
	}
	cfg.SlowQuery = time.Duration(slowQuery) * time.Millisecond
	cfg.SlowRequest = time.Duration(slowRequest) * time.Millisecond

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("%s: unknown level %q", EnvLogLevel, cfg.LogLevel)
	}
	switch cfg.Telemetry {
	case TelemetryOff, TelemetryStdout:
	default:
		return Config{}, fmt.Errorf("%s: unknown exporter %q", EnvTelemetry, cfg.Telemetry)
	}
	return cfg, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func positiveInt(getenv func(string) string, key string, def int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return n, nil
}
