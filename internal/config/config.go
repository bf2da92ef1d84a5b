package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the DevHire board.
type Config struct {
	Sources   SourcesConfig
	Search    SearchConfig
	StorePath string
}

// SourcesConfig holds per-source credentials. Presence of credentials is
// what enables a source; a partial-credentials setup still works with
// whatever sources remain.
type SourcesConfig struct {
	JSearch  JSearchConfig
	Reed     ReedConfig
	RemoteOK RemoteOKConfig
}

// JSearchConfig configures the JSearch RapidAPI source.
type JSearchConfig struct {
	APIKey  string `yaml:"api_key"`
	APIHost string `yaml:"api_host"`
}

// Enabled reports whether JSearch has the credentials it needs.
func (c JSearchConfig) Enabled() bool {
	return c.APIKey != "" && c.APIHost != ""
}

// ReedConfig configures the Reed UK jobs source.
type ReedConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// Enabled reports whether Reed has the credentials it needs.
func (c ReedConfig) Enabled() bool {
	return c.APIKey != ""
}

// RemoteOKConfig configures the RemoteOK feed. It needs no credentials, so
// it is on unless explicitly disabled.
type RemoteOKConfig struct {
	BaseURL  string `yaml:"base_url"`
	Disabled bool   `yaml:"disabled"`
}

// Enabled reports whether the RemoteOK source should run.
func (c RemoteOKConfig) Enabled() bool {
	return !c.Disabled
}

// SearchConfig holds aggregation tuning knobs.
type SearchConfig struct {
	Timeout    time.Duration // per-source call timeout
	PageSize   int
	MinDelay   time.Duration // minimum gap between calls to the same source
	MaxRetries int
	RetryDelay time.Duration
}

// rawConfig is used for YAML unmarshaling (snake_case fields and durations
// as strings).
type rawConfig struct {
	Sources struct {
		JSearch  JSearchConfig  `yaml:"jsearch"`
		Reed     ReedConfig     `yaml:"reed"`
		RemoteOK RemoteOKConfig `yaml:"remoteok"`
	} `yaml:"sources"`
	Search struct {
		Timeout    string `yaml:"timeout"`
		PageSize   int    `yaml:"page_size"`
		MinDelay   string `yaml:"min_delay"`
		MaxRetries *int   `yaml:"max_retries"`
		RetryDelay string `yaml:"retry_delay"`
	} `yaml:"search"`
	Store struct {
		Path string `yaml:"path"`
	} `yaml:"store"`
}

// Default returns the configuration used when no config file exists:
// RemoteOK only, conservative timeouts, store in the working directory.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Timeout:    15 * time.Second,
			PageSize:   100,
			MinDelay:   time.Second,
			MaxRetries: 2,
			RetryDelay: 5 * time.Second,
		},
		StorePath: "devhire.db",
	}
}

// Load reads and parses the YAML config file at path. Environment variables
// in the file are expanded, so credentials can live outside the file. A
// missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	cfg.Sources = SourcesConfig{
		JSearch:  raw.Sources.JSearch,
		Reed:     raw.Sources.Reed,
		RemoteOK: raw.Sources.RemoteOK,
	}

	if raw.Search.Timeout != "" {
		cfg.Search.Timeout, err = time.ParseDuration(raw.Search.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parse search.timeout %q: %w", raw.Search.Timeout, err)
		}
	}
	if raw.Search.MinDelay != "" {
		cfg.Search.MinDelay, err = time.ParseDuration(raw.Search.MinDelay)
		if err != nil {
			return nil, fmt.Errorf("parse search.min_delay %q: %w", raw.Search.MinDelay, err)
		}
	}
	if raw.Search.RetryDelay != "" {
		cfg.Search.RetryDelay, err = time.ParseDuration(raw.Search.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("parse search.retry_delay %q: %w", raw.Search.RetryDelay, err)
		}
	}
	if raw.Search.PageSize > 0 {
		cfg.Search.PageSize = raw.Search.PageSize
	}
	if raw.Search.MaxRetries != nil {
		cfg.Search.MaxRetries = *raw.Search.MaxRetries
	}
	if raw.Store.Path != "" {
		cfg.StorePath = raw.Store.Path
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Search.Timeout <= 0 {
		return fmt.Errorf("search.timeout must be positive, got %v", cfg.Search.Timeout)
	}
	if cfg.Search.MaxRetries < 0 {
		return fmt.Errorf("search.max_retries must not be negative, got %d", cfg.Search.MaxRetries)
	}
	return nil
}

// EnabledSourceNames lists which sources will run, in priority order.
func (c *Config) EnabledSourceNames() []string {
	var names []string
	if c.Sources.JSearch.Enabled() {
		names = append(names, "jsearch")
	}
	if c.Sources.Reed.Enabled() {
		names = append(names, "reed")
	}
	if c.Sources.RemoteOK.Enabled() {
		names = append(names, "remoteok")
	}
	return names
}
