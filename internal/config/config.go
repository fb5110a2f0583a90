package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Selection mode names accepted in the config file
const (
	ModeOne      = "one"
	ModeMaybeOne = "maybe-one"
	ModeMultiple = "multiple"
)

// Filter kind names accepted in the config file
const (
	FilterSubstring = "substring"
	FilterPrefix    = "prefix"
	FilterFuzzy     = "fuzzy"
)

// Config describes the demo widget: the option list and how selection and
// filtering behave.
type Config struct {
	Placeholder string   `toml:"placeholder"`
	Mode        string   `toml:"mode"`
	Filter      string   `toml:"filter"`
	Initial     []int    `toml:"initial"`
	Options     []string `toml:"options"`
}

// DefaultConfig returns the built-in demo configuration
func DefaultConfig() *Config {
	return &Config{
		Placeholder: "Type to search",
		Mode:        ModeMaybeOne,
		Filter:      FilterSubstring,
		Options: []string{
			"First", "Second", "Third", "Fourth", "Fifth",
			`Something else with "first"`,
		},
	}
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(cfg *Config) error
	Path() string
}

// service is the concrete implementation
type service struct {
	filePath string
}

// NewService creates a config service reading from the given path, or from
// .dropselect.toml in the working directory when path is empty.
func NewService(path string) Service {
	if path == "" {
		path = ".dropselect.toml"
	}
	return &service{filePath: path}
}

// Path returns the backing file path
func (s *service) Path() string {
	return s.filePath
}

// Load reads and validates the configuration file
func (s *service) Load() (*Config, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", s.filePath, err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", s.filePath, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", s.filePath, err)
	}
	return cfg, nil
}

// Save writes the configuration file, creating parent directories as needed
func (s *service) Save(cfg *Config) error {
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config dir: %w", err)
		}
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("writing config %s: %w", s.filePath, err)
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Mode {
	case ModeOne, ModeMaybeOne, ModeMultiple:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	switch c.Filter {
	case FilterSubstring, FilterPrefix, FilterFuzzy:
	default:
		return fmt.Errorf("unknown filter %q", c.Filter)
	}
	if len(c.Options) == 0 {
		return fmt.Errorf("options list is empty")
	}
	for _, i := range c.Initial {
		if i < 0 || i >= len(c.Options) {
			return fmt.Errorf("initial index %d out of range (have %d options)", i, len(c.Options))
		}
	}
	if c.Mode != ModeMultiple && len(c.Initial) > 1 {
		return fmt.Errorf("mode %q allows at most one initial index, got %d", c.Mode, len(c.Initial))
	}
	return nil
}
