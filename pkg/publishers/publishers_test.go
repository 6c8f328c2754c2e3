package publishers

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRegistryEnabledFilter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "publishers.yaml")
	raw := `
publishers:
  - id: http1
    type: http
    enabled: false
    http:
      url: https://example.com
  - id: http2
    type: HTTP
    enabled: true
    http:
      url: " https://example.com/2 "
  - id: chat
    type: telegram
    telegram:
      token: abc
      chat_id: -100123
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	enabled := reg.Enabled()
	if len(enabled) != 2 || enabled[0].ID != "http2" || enabled[1].ID != "chat" {
		t.Fatalf("expected http2 and chat enabled, got %#v", enabled)
	}
	if enabled[0].HTTP.URL != "https://example.com/2" || enabled[0].HTTP.Method != "POST" {
		t.Fatalf("http config not sanitized: %#v", enabled[0].HTTP)
	}
	if cfg, ok := reg.ByID("chat"); !ok || cfg.Telegram.ChatID != -100123 {
		t.Fatalf("ByID(chat) = %#v, %v", cfg, ok)
	}
}

func TestLoadRegistryJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publishers.json")
	raw := `{"publishers":[{"id":"topic","type":"sns","sns":{"topic_arn":"arn:aws:sns:eu-west-1:1:t","region":"eu-west-1"}}]}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if got := reg.All(); len(got) != 1 || got[0].SNS.Region != "eu-west-1" {
		t.Fatalf("unexpected registry %#v", got)
	}
}

func TestLoadRegistryRejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "publishers.yaml")
	raw := `
publishers:
  - id: hook
    type: http
    http: {url: https://a.example}
  - id: hook
    type: http
    http: {url: https://b.example}
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := LoadRegistry(path); err == nil {
		t.Fatal("expected duplicate id error")
	}
}

func TestValidatePublisherConfig(t *testing.T) {
	bad := []PublisherConfig{
		{ID: "h1", Type: TypeHTTP},
		{ID: "q1", Type: TypeSQS, SQS: &SQSPublisherConfig{QueueURL: "https://q"}},
		{ID: "s1", Type: TypeSNS, SNS: &SNSPublisherConfig{Region: "eu-west-1"}},
		{ID: "g1", Type: TypeGCPPubSub, GCPPubSub: &GCPPubSubConfig{ProjectID: "p"}},
		{ID: "t1", Type: TypeTelegram, Telegram: &TelegramPublisherConfig{Token: "x"}},
		{ID: "x1", Type: "kafka"},
		{Type: TypeHTTP},
	}
	for _, cfg := range bad {
		if err := validatePublisherConfig(cfg); err == nil {
			t.Errorf("expected validation error for %#v", cfg)
		}
	}

	good := PublisherConfig{ID: "g1", Type: TypeGCPPubSub, GCPPubSub: &GCPPubSubConfig{ProjectID: "p", Topic: "t"}}
	if err := validatePublisherConfig(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
