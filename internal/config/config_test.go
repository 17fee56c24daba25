package config

import (
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(env(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg != Default() {
		t.Fatalf("expected defaults %+v, got %+v", Default(), cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := load(env(map[string]string{
		"HTTP_ADDR":            ":9090",
		"OTEL_SERVICE_NAME":    "calc-test",
		"LOG_LEVEL":            "debug",
		"OTEL_SDK_DISABLED":    "true",
		"SESSION_IDLE_TIMEOUT": "90s",
		"SHUTDOWN_TIMEOUT":     "1s",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Config{
		Addr:               ":9090",
		ServiceName:        "calc-test",
		LogLevel:           zapcore.DebugLevel,
		TelemetryDisabled:  true,
		SessionIdleTimeout: 90 * time.Second,
		ShutdownTimeout:    time.Second,
	}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadAcceptsMinimumIdleTimeout(t *testing.T) {
	cfg, err := load(env(map[string]string{"SESSION_IDLE_TIMEOUT": "1s"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SessionIdleTimeout != MinSessionIdleTimeout {
		t.Fatalf("expected idle timeout %s, got %s", MinSessionIdleTimeout, cfg.SessionIdleTimeout)
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{key: "LOG_LEVEL", value: "loud"},
		{key: "OTEL_SDK_DISABLED", value: "maybe"},
		{key: "SESSION_IDLE_TIMEOUT", value: "forever"},
		{key: "SESSION_IDLE_TIMEOUT", value: "1ns"},
		{key: "SESSION_IDLE_TIMEOUT", value: "999ms"},
		{key: "SHUTDOWN_TIMEOUT", value: "-1s"},
		{key: "SHUTDOWN_TIMEOUT", value: "0s"},
	}

	for _, tc := range tests {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			if _, err := load(env(map[string]string{tc.key: tc.value})); err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}
