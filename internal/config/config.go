package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
)

// MinSessionIdleTimeout is the shortest accepted SESSION_IDLE_TIMEOUT. The
// idle sweeper ticks at half this value.
const MinSessionIdleTimeout = time.Second

// Config is the API server configuration, read from the environment.
type Config struct {
	Addr               string
	ServiceName        string
	LogLevel           zapcore.Level
	TelemetryDisabled  bool
	SessionIdleTimeout time.Duration
	ShutdownTimeout    time.Duration
}

func Default() Config {
	return Config{
		Addr:               ":8080",
		ServiceName:        "calculator-api",
		LogLevel:           zapcore.InfoLevel,
		SessionIdleTimeout: 30 * time.Minute,
		ShutdownTimeout:    5 * time.Second,
	}
}

// Load reads the environment on top of Default.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("HTTP_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("OTEL_SERVICE_NAME"); ok && v != "" {
		cfg.ServiceName = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		level, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}
	if v, ok := lookup("OTEL_SDK_DISABLED"); ok && v != "" {
		disabled, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse OTEL_SDK_DISABLED: %w", err)
		}
		cfg.TelemetryDisabled = disabled
	}

	var err error
	if cfg.SessionIdleTimeout, err = durationVar(lookup, "SESSION_IDLE_TIMEOUT", cfg.SessionIdleTimeout, MinSessionIdleTimeout); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = durationVar(lookup, "SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout, time.Nanosecond); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// durationVar parses key as a time.Duration no shorter than minimum.
func durationVar(lookup func(string) (string, bool), key string, def, minimum time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d < minimum {
		return 0, fmt.Errorf("parse %s: must be at least %s, got %s", key, minimum, v)
	}
	return d, nil
}
