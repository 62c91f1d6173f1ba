package config

import (
	"testing"

	"github.com/orderpipe/order-producer/internal/destination"
	"github.com/orderpipe/order-producer/internal/metrics"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WEBHOOK_PARAM", "")
	t.Setenv("METRICS_NAMESPACE", "")
	t.Setenv("LOCAL_ADDR", "")
	t.Setenv("RUN_LOCAL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WebhookParam != destination.DefaultWebhookParam {
		t.Errorf("WebhookParam = %q", cfg.WebhookParam)
	}
	if cfg.MetricsNamespace != metrics.DefaultNamespace {
		t.Errorf("MetricsNamespace = %q", cfg.MetricsNamespace)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.RunLocal {
		t.Error("RunLocal should default to false")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WEBHOOK_PARAM", "/custom/webhook")
	t.Setenv("METRICS_NAMESPACE", "Custom")
	t.Setenv("LOCAL_ADDR", "127.0.0.1:9090")
	t.Setenv("RUN_LOCAL", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WebhookParam != "/custom/webhook" {
		t.Errorf("WebhookParam = %q", cfg.WebhookParam)
	}
	if cfg.MetricsNamespace != "Custom" {
		t.Errorf("MetricsNamespace = %q", cfg.MetricsNamespace)
	}
	if cfg.Addr != "127.0.0.1:9090" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if !cfg.RunLocal {
		t.Error("RunLocal should be true")
	}
}

func TestLoad_InvalidAddr(t *testing.T) {
	t.Setenv("LOCAL_ADDR", "no-port-here")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for LOCAL_ADDR without a port")
	}
}
