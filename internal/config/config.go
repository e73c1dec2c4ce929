package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Filter modes
const (
	FilterSubstring = "substring"
	FilterFuzzy     = "fuzzy"
)

// Config represents the application configuration
type Config struct {
	Version    int      `toml:"version"`
	Filter     string   `toml:"filter"`      // "substring" or "fuzzy"
	MaxResults int      `toml:"max_results"` // rows shown in the popup before scrolling
	LogFile    string   `toml:"log_file"`
	People     []Person `toml:"people"`
}

// Person is the on-disk form of a sample record
type Person struct {
	Name        string `toml:"name"`
	DateOfBirth string `toml:"date_of_birth"` // YYYY-MM-DD
	Occupation  string `toml:"occupation"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "peoplesearch", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for an explicit file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file
// does not exist yet
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep sensible values
	cfg := DefaultConfig()
	cfg.People = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.People) == 0 {
		cfg.People = DefaultConfig().People
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks values the UI cannot recover from
func (c *Config) Validate() error {
	switch c.Filter {
	case FilterSubstring, FilterFuzzy:
	default:
		return fmt.Errorf("unknown filter %q (want %q or %q)", c.Filter, FilterSubstring, FilterFuzzy)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max_results must be at least 1, got %d", c.MaxResults)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		Filter:     FilterSubstring,
		MaxResults: 8,
		LogFile:    "peoplesearch.log",
		People: []Person{
			{Name: "George", DateOfBirth: "1989-01-01", Occupation: "Software Engineer"},
			{Name: "Bob", DateOfBirth: "1978-01-01", Occupation: "Software Tester"},
			{Name: "Alex", DateOfBirth: "2000-01-01", Occupation: "Car Tester"},
		},
	}
}
