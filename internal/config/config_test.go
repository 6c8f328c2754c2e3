package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/samvad-hq/football-stats/pkg/footballapi"
)

func TestLoadDefaultsWithKey(t *testing.T) {
	t.Setenv("FOOTBALL_API_KEY", "  abc123 ")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIKey != "abc123" {
		t.Fatalf("api key = %q", cfg.APIKey)
	}
	if cfg.APIBaseURL != footballapi.DefaultBaseURL {
		t.Fatalf("base url = %q", cfg.APIBaseURL)
	}
	if cfg.APIKeyHeader != footballapi.DefaultAPIKeyHeader {
		t.Fatalf("key header = %q", cfg.APIKeyHeader)
	}
	if cfg.PollInterval != time.Hour {
		t.Fatalf("poll interval = %s", cfg.PollInterval)
	}
	if cfg.APITimeout != 0 {
		t.Fatalf("timeout = %s, want transport default", cfg.APITimeout)
	}
	if cfg.PollConcurrency != 4 {
		t.Fatalf("poll concurrency = %d", cfg.PollConcurrency)
	}
}

func TestLoadFailsWithoutKey(t *testing.T) {
	t.Setenv("FOOTBALL_API_KEY", "")

	_, err := load(viper.New())
	if err == nil || !strings.Contains(err.Error(), "football_api_key") {
		t.Fatalf("expected missing key error, got %v", err)
	}
}

func TestLoadRejectsExplicitPlaceholder(t *testing.T) {
	t.Setenv("FOOTBALL_API_KEY", footballapi.PlaceholderAPIKey)

	if _, err := load(viper.New()); err == nil {
		t.Fatal("expected placeholder key to be rejected")
	}
}

func TestLoadAllowsPlaceholderWhenOptedIn(t *testing.T) {
	t.Setenv("FOOTBALL_API_KEY", "")
	t.Setenv("ALLOW_PLACEHOLDER_API_KEY", "true")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIKey != footballapi.PlaceholderAPIKey {
		t.Fatalf("api key = %q, want placeholder", cfg.APIKey)
	}
}

func TestLoadValidatesDurations(t *testing.T) {
	cases := map[string]string{
		"POLL_INTERVAL":                "0",
		"POLL_CONCURRENCY":             "-1",
		"FOOTBALL_API_TIMEOUT_SECONDS": "-5",
	}
	for env, val := range cases {
		t.Run(env, func(t *testing.T) {
			t.Setenv("FOOTBALL_API_KEY", "k")
			t.Setenv(env, val)
			if _, err := load(viper.New()); err == nil {
				t.Fatalf("expected %s=%s to be rejected", env, val)
			}
		})
	}
}

func TestClientConfigMapping(t *testing.T) {
	t.Setenv("FOOTBALL_API_KEY", "k")
	t.Setenv("FOOTBALL_API_HOST", "api-football-v1.p.rapidapi.com")
	t.Setenv("FOOTBALL_API_TIMEOUT_SECONDS", "15")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cc := cfg.ClientConfig()
	if cc.APIKey != "k" || cc.Host != "api-football-v1.p.rapidapi.com" {
		t.Fatalf("client config = %+v", cc)
	}
	if cfg.APITimeout != 15*time.Second {
		t.Fatalf("timeout = %s", cfg.APITimeout)
	}
}
