package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Storage: StorageConfig{Driver: "local", LocalDir: "data/blobs"},
			Store:   StoreConfig{Driver: "postgres", DSN: "postgres://localhost/recap"},
			Transcriber: TranscriberConfig{
				BaseURL: "https://speech.example.com",
			},
			Paths: PathsConfig{Events: "data/events"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing storage driver",
			mutate:  func(c *Config) { c.Storage.Driver = "" },
			wantErr: true,
		},
		{
			name:    "gcs driver requires bucket",
			mutate:  func(c *Config) { c.Storage = StorageConfig{Driver: "gcs"} },
			wantErr: true,
		},
		{
			name:    "unknown store driver",
			mutate:  func(c *Config) { c.Store.Driver = "sqlite" },
			wantErr: true,
		},
		{
			name:    "postgres requires dsn",
			mutate:  func(c *Config) { c.Store.DSN = "" },
			wantErr: true,
		},
		{
			name:    "missing transcriber url",
			mutate:  func(c *Config) { c.Transcriber.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "missing events path",
			mutate:  func(c *Config) { c.Paths.Events = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Storage:     StorageConfig{Driver: "local", LocalDir: "data/blobs"},
		Store:       StoreConfig{Driver: "mongo", DSN: "mongodb://localhost"},
		Transcriber: TranscriberConfig{BaseURL: "https://speech.example.com"},
		Paths:       PathsConfig{Events: "data/events"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Transcriber.Language != "en-US" {
		t.Errorf("Language = %q, want en-US", cfg.Transcriber.Language)
	}
	if cfg.Transcriber.PollInterval.Std() != 2*time.Second {
		t.Errorf("PollInterval = %v, want 2s", cfg.Transcriber.PollInterval)
	}
	if cfg.Pipeline.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %d, want 2", cfg.Pipeline.MaxConcurrent)
	}
	if cfg.Pipeline.SummaryLength != 3 {
		t.Errorf("SummaryLength = %d, want 3", cfg.Pipeline.SummaryLength)
	}
	if cfg.Store.Database != "recap" {
		t.Errorf("Database = %q, want recap", cfg.Store.Database)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
storage:
  driver: local
  local_dir: data/blobs
store:
  driver: postgres
  dsn: postgres://localhost/recap
transcriber:
  base_url: https://speech.example.com
  timeout: 3m
paths:
  events: data/events
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Transcriber.Timeout.Std() != 3*time.Minute {
		t.Errorf("Timeout = %v, want 3m", cfg.Transcriber.Timeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
storage:
  driver: local
  local_dir: data/blobs
store:
  driver: postgres
  dsn: postgres://file-dsn/recap
transcriber:
  base_url: https://speech.example.com
paths:
  events: data/events
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("RECAP_STORE_DSN", "postgres://env-dsn/recap")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Store.DSN != "postgres://env-dsn/recap" {
		t.Errorf("DSN = %q, want env override", cfg.Store.DSN)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}
