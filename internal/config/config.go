package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config models masterplan.yml.
type Config struct {
	CreatedBy string `yaml:"created_by"`
	DataDir   string `yaml:"data_dir"`
	Snapshots struct {
		Dir             string `yaml:"dir"`
		IndexFile       string `yaml:"index_file"`
		IntervalMinutes int    `yaml:"interval_minutes"`
	} `yaml:"snapshots"`
	Undo struct {
		Depth int `yaml:"depth"`
	} `yaml:"undo"`
	Recent struct {
		File  string `yaml:"file"`
		Limit int    `yaml:"limit"`
	} `yaml:"recent"`
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	cfg.CreatedBy = "User"
	cfg.Snapshots.Dir = "backups"
	cfg.Snapshots.IndexFile = "project_snap_index.json"
	cfg.Snapshots.IntervalMinutes = 10
	cfg.Undo.Depth = 50
	cfg.Recent.File = "recent_projects.json"
	cfg.Recent.Limit = 10
	return &cfg
}

// Path returns the config file path for a workspace.
func Path(workspace string) string {
	if workspace == "" {
		workspace = "."
	}
	return filepath.Join(workspace, "masterplan.yml")
}

// Load reads config from the workspace, falling back to defaults when the
// file does not exist.
func Load(workspace string) (*Config, error) {
	data, err := os.ReadFile(Path(workspace))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return FromYAML(data)
}

// FromYAML parses and validates config from raw YAML bytes. Unset fields
// keep their defaults.
func FromYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures the config meets required structure.
func (c *Config) Validate() error {
	if c.Snapshots.Dir == "" {
		return fmt.Errorf("config.snapshots.dir is required")
	}
	if c.Snapshots.IndexFile == "" {
		return fmt.Errorf("config.snapshots.index_file is required")
	}
	if c.Snapshots.IntervalMinutes <= 0 {
		return fmt.Errorf("config.snapshots.interval_minutes must be positive")
	}
	if c.Undo.Depth <= 0 {
		return fmt.Errorf("config.undo.depth must be positive")
	}
	if c.Recent.Limit <= 0 {
		return fmt.Errorf("config.recent.limit must be positive")
	}
	return nil
}

// SnapshotInterval returns the auto-snapshot debounce interval.
func (c *Config) SnapshotInterval() time.Duration {
	return time.Duration(c.Snapshots.IntervalMinutes) * time.Minute
}
