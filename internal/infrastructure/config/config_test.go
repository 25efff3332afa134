package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.Store.FetchLatency != time.Second {
		t.Fatalf("expected 1s fetch latency, got %v", cfg.Store.FetchLatency)
	}
	if !cfg.Store.Seed {
		t.Fatalf("expected seeding on by default")
	}
	if cfg.PreferencesBackend != PreferencesMemory {
		t.Fatalf("expected memory preferences, got %q", cfg.PreferencesBackend)
	}
	if cfg.NeedsMongo() || cfg.NeedsRedis() {
		t.Fatalf("defaults must not require external stores")
	}
	if cfg.RateLimit.LoginPerSecond != 5 || cfg.RateLimit.LoginBurst != 10 {
		t.Fatalf("unexpected login rate limit: %+v", cfg.RateLimit)
	}
	if cfg.AMQP.Queue != "store_changes" {
		t.Fatalf("unexpected amqp queue %q", cfg.AMQP.Queue)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":                "9090",
		"FETCH_LATENCY":       "250ms",
		"PREFERENCES_BACKEND": "redis",
		"CHANGE_LOG":          "mongo",
		"SEED_FIXTURES":       "false",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.Store.FetchLatency != 250*time.Millisecond || cfg.Store.Seed {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.NeedsRedis() || !cfg.NeedsMongo() {
		t.Fatalf("expected redis and mongo to be required")
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PREFERENCES_BACKEND": "etcd",
	}))
	if err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestLoad_AMQPSink(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"CHANGE_LOG":       "amqp",
		"AMQP_QUEUE":       "audit",
		"LOGIN_RATE_LIMIT": "0",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Changes.Sink != ChangeLogAMQP || cfg.AMQP.Queue != "audit" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.NeedsMongo() {
		t.Fatalf("amqp sink must not require mongo")
	}
	if cfg.RateLimit.LoginPerSecond != 0 {
		t.Fatalf("expected limiter disabled")
	}
}

func TestLoad_RejectsNegativeRateLimit(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"LOGIN_RATE_LIMIT": "-1",
	}))
	if err == nil {
		t.Fatalf("expected error for negative rate limit")
	}
}
