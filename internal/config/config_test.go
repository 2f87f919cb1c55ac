package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.JWTSecret = "test-secret"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SiteName != "Interview Helper" {
		t.Errorf("SiteName = %q, want %q", cfg.SiteName, "Interview Helper")
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".interviewhelper.yml")
	content := `site_name: My Q&A Site
content_dir: content
port: 9090
questions_per_topic: 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SiteName != "My Q&A Site" {
		t.Errorf("SiteName = %q, want %q", cfg.SiteName, "My Q&A Site")
	}
	if cfg.ContentDir != "content" {
		t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "content")
	}
	if cfg.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Port)
	}
	if cfg.QuestionsPerTopic != 5 {
		t.Errorf("QuestionsPerTopic = %d, want 5", cfg.QuestionsPerTopic)
	}
	// Unset fields keep their defaults.
	if cfg.OutputDir != "site" {
		t.Errorf("OutputDir = %q, want default %q", cfg.OutputDir, "site")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("INTERVIEWHELPER_PORT", "3000")
	t.Setenv("INTERVIEWHELPER_SITE_NAME", "Env Site")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("Port = %d, want 3000", cfg.Port)
	}
	if cfg.SiteName != "Env Site" {
		t.Errorf("SiteName = %q, want %q", cfg.SiteName, "Env Site")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yml")

	cfg := DefaultConfig()
	cfg.SiteName = "Round Trip"
	cfg.Port = 4040
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.SiteName != "Round Trip" {
		t.Errorf("SiteName = %q, want %q", loaded.SiteName, "Round Trip")
	}
	if loaded.Port != 4040 {
		t.Errorf("Port = %d, want 4040", loaded.Port)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty site name", func(c *Config) { c.SiteName = "" }},
		{"empty content dir", func(c *Config) { c.ContentDir = "" }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"unknown provider", func(c *Config) { c.Provider = "mystery" }},
		{"negative questions", func(c *Config) { c.QuestionsPerTopic = -1 }},
		{"zero token ttl", func(c *Config) { c.TokenTTLHours = 0 }},
		{"negative rpm", func(c *Config) { c.MaxRPM = -5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestAPIKeyEnvVar(t *testing.T) {
	if got := APIKeyEnvVar(ProviderOpenAI); got != "OPENAI_API_KEY" {
		t.Errorf("APIKeyEnvVar(openai) = %q, want OPENAI_API_KEY", got)
	}
	if got := APIKeyEnvVar("other"); got != "" {
		t.Errorf("APIKeyEnvVar(other) = %q, want empty", got)
	}
}
