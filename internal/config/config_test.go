// Doclab - Broken Access Control Training Lab
// Copyright 2026 Secdojo Labs
// SPDX-License-Identifier: Apache-2.0
// https://github.com/secdojo/doclab

package config

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Security.JWTSecret = testSecret
	return cfg
}

func TestDefaultsValidateWithSecret(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("defaults with secret failed validation: %v", err)
	}
}

func TestValidateRejectsMissingSecret(t *testing.T) {
	cfg := defaultConfig()
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing JWT secret")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsShortSecret(t *testing.T) {
	cfg := defaultConfig()
	cfg.Security.JWTSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for short JWT secret")
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.Server.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d passed validation", port)
		}
	}
}

func TestValidateRejectsBadLogFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for bad log format")
	}
}

func TestValidateRejectsNonPositiveTokenTTL(t *testing.T) {
	cfg := validConfig()
	cfg.Security.TokenTTL = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero token TTL")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Security.TokenTTL != 30*time.Minute {
		t.Errorf("token TTL = %v, want 30m", cfg.Security.TokenTTL)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != "https://a.example" {
		t.Errorf("cors origins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadUnmappedEnvIgnored(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("RANDOM_UNRELATED_VAR", "true")

	if _, err := Load(); err != nil {
		t.Fatalf("Load() failed with unrelated env var: %v", err)
	}
}
