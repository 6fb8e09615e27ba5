package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != 8080 || cfg.MetricsPort != 9091 {
		t.Fatalf("unexpected ports: %d, %d", cfg.HTTPPort, cfg.MetricsPort)
	}
	if cfg.MaxConcurrent != 3 {
		t.Fatalf("unexpected concurrency default: %d", cfg.MaxConcurrent)
	}
	if GetGlobal() != cfg {
		t.Fatal("Load did not set the global config")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("MAX_CONCURRENT", "5")
	t.Setenv("CALL_TIMEOUT", "10s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != 9999 || cfg.MaxConcurrent != 5 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.CallTimeout.Seconds() != 10 {
		t.Fatalf("unexpected timeout: %s", cfg.CallTimeout)
	}
}

func TestLoadRejectsInvalidConcurrency(t *testing.T) {
	t.Setenv("MAX_CONCURRENT", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for MAX_CONCURRENT=0")
	}
}

func TestIsImageTypeAllowed(t *testing.T) {
	cfg := &Config{}
	cases := []struct {
		contentType string
		want        bool
	}{
		{"image/png", true},
		{"image/jpeg", true},
		{"IMAGE/PNG", true},
		{"image/png; charset=binary", true},
		{"text/html", false},
		{"application/pdf", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := cfg.IsImageTypeAllowed(tc.contentType); got != tc.want {
			t.Fatalf("IsImageTypeAllowed(%q) = %v, want %v", tc.contentType, got, tc.want)
		}
	}
}

func TestAPIKeyFor(t *testing.T) {
	cfg := &Config{OpenAIAPIKey: "sk-test", AnthropicAPIKey: "ak-test"}
	if cfg.APIKeyFor("openai") != "sk-test" || cfg.APIKeyFor("Anthropic") != "ak-test" {
		t.Fatal("key lookup failed")
	}
	if cfg.APIKeyFor("huggingface") != "" || cfg.APIKeyFor("google") != "" {
		t.Fatal("expected empty keys")
	}
}
