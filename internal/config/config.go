package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quickrecap/recap-pipeline/internal/summarize"
)

type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Store       StoreConfig       `yaml:"store"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
}

type StorageConfig struct {
	Driver          string `yaml:"driver"` // "gcs" or "local"
	Bucket          string `yaml:"bucket"`
	CredentialsPath string `yaml:"credentials_path"`
	LocalDir        string `yaml:"local_dir"`
}

type StoreConfig struct {
	Driver     string `yaml:"driver"` // "postgres" or "mongo"
	DSN        string `yaml:"dsn"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type TranscriberConfig struct {
	BaseURL      string   `yaml:"base_url"`
	Language     string   `yaml:"language"`
	PollInterval Duration `yaml:"poll_interval"`
	Timeout      Duration `yaml:"timeout"`
}

type PipelineConfig struct {
	MaxConcurrent    int      `yaml:"max_concurrent"`
	SummaryLength    int      `yaml:"summary_length"`
	TranscodeTimeout Duration `yaml:"transcode_timeout"`
	MaxRetries       int      `yaml:"max_retries"`
}

// Duration lets yaml.v3 decode values like "2s" or "5m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std converts to the standard library representation.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type PathsConfig struct {
	Events    string `yaml:"events"`
	Temp      string `yaml:"temp"`
	Artifacts string `yaml:"artifacts"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads and validates a YAML config file. Secrets may come from the
// environment instead of the file: RECAP_STORE_DSN overrides store.dsn and
// RECAP_TRANSCRIBER_URL overrides transcriber.base_url.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if dsn := os.Getenv("RECAP_STORE_DSN"); dsn != "" {
		cfg.Store.DSN = dsn
	}
	if url := os.Getenv("RECAP_TRANSCRIBER_URL"); url != "" {
		cfg.Transcriber.BaseURL = url
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "gcs":
		if c.Storage.Bucket == "" {
			return fmt.Errorf("storage.bucket is required for the gcs driver")
		}
	case "local":
		if c.Storage.LocalDir == "" {
			return fmt.Errorf("storage.local_dir is required for the local driver")
		}
	case "":
		return fmt.Errorf("storage.driver is required")
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}

	switch c.Store.Driver {
	case "postgres":
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for the postgres driver")
		}
	case "mongo":
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for the mongo driver")
		}
		if c.Store.Database == "" {
			c.Store.Database = "recap"
		}
		if c.Store.Collection == "" {
			c.Store.Collection = "users"
		}
	case "":
		return fmt.Errorf("store.driver is required")
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}

	if c.Transcriber.BaseURL == "" {
		return fmt.Errorf("transcriber.base_url is required")
	}
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = "en-US"
	}
	if c.Transcriber.PollInterval == 0 {
		c.Transcriber.PollInterval = Duration(2 * time.Second)
	}
	if c.Transcriber.Timeout == 0 {
		c.Transcriber.Timeout = Duration(10 * time.Minute)
	}

	if c.Pipeline.MaxConcurrent == 0 {
		c.Pipeline.MaxConcurrent = 2
	}
	if c.Pipeline.SummaryLength == 0 {
		c.Pipeline.SummaryLength = summarize.DefaultLength
	}
	if c.Pipeline.TranscodeTimeout == 0 {
		c.Pipeline.TranscodeTimeout = Duration(5 * time.Minute)
	}
	if c.Pipeline.MaxRetries == 0 {
		c.Pipeline.MaxRetries = 3
	}

	if c.Paths.Events == "" {
		return fmt.Errorf("paths.events is required")
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}

	return nil
}
