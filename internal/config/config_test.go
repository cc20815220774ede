package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	content := `track: episode.ass
format: ass
width: 1920
height: 1080
at: 12.5
`
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "preview.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if cfg.Track != "episode.ass" || cfg.Format != "ass" {
		t.Errorf("track/format = %q/%q", cfg.Track, cfg.Format)
	}
	if cfg.Width != 1920 || cfg.Height != 1080 {
		t.Errorf("viewport = %vx%v, want 1920x1080", cfg.Width, cfg.Height)
	}
	if cfg.At != 12.5 {
		t.Errorf("at = %v, want 12.5", cfg.At)
	}
}

func TestLoadConfigFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "partial.yaml")
	if err := os.WriteFile(path, []byte("track: a.vtt\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("viewport = %vx%v, want default 1280x720", cfg.Width, cfg.Height)
	}
	if cfg.Format != "vtt" {
		t.Errorf("format = %q, want default vtt", cfg.Format)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing track", func(c *Config) { c.Track = "" }, true},
		{"bad format", func(c *Config) { c.Format = "srt" }, true},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -1 }, true},
		{"negative time", func(c *Config) { c.At = -0.5 }, true},
		{"ass format", func(c *Config) { c.Format = "ass" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Track = "track.vtt"
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
