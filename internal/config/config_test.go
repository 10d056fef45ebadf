package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "APP_ENV", "PORT", "LOG_LEVEL", "LOG_FORMAT", "REDIS_URL",
		shutdownSecondsEnvVar, shutdownDurationEnvVar,
		idemTTLSecondsEnvVar, idemTTLDurEnvVar, strictAmountsEnvVar,
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppName != defaultAppName || cfg.Port != defaultPort || cfg.LogLevel != defaultLogLevel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.ShutdownPeriod != defaultShutdownDelay || cfg.IdempotencyTTL != defaultIdempotencyTTL {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if cfg.StrictAmounts {
		t.Fatalf("strict amounts should default to false")
	}
	if cfg.Address() != ":8080" {
		t.Fatalf("unexpected address %s", cfg.Address())
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", ":9090")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv(shutdownDurationEnvVar, "3s")
	t.Setenv(idemTTLSecondsEnvVar, "60")
	t.Setenv(strictAmountsEnvVar, "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Address() != ":9090" {
		t.Fatalf("unexpected address %s", cfg.Address())
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected lowercased log level, got %s", cfg.LogLevel)
	}
	if cfg.ShutdownPeriod != 3*time.Second || cfg.IdempotencyTTL != time.Minute {
		t.Fatalf("unexpected durations: %+v", cfg)
	}
	if !cfg.StrictAmounts {
		t.Fatalf("expected strict amounts")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		shutdownSecondsEnvVar: "soon",
		idemTTLDurEnvVar:      "forever",
		strictAmountsEnvVar:   "maybe",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoadRequiresRedisOutsideDev(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("expected missing REDIS_URL error")
	}

	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	if _, err := Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
}
