package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the reqforge configuration
type Config struct {
	EnvFile   string            `json:"envFile,omitempty"`
	Output    string            `json:"output,omitempty"`    // console or json
	NoColor   *bool             `json:"noColor,omitempty"`
	Verbose   *bool             `json:"verbose,omitempty"`
	Variables map[string]string `json:"variables,omitempty"` // Variables available to recipe files
	Headers   map[string]string `json:"headers,omitempty"`   // Default headers for recipe requests
	Timeout   int               `json:"timeout,omitempty"`   // Default timeout in seconds for recipe requests
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetVerbose returns the verbose setting, defaulting to false
func (c *Config) GetVerbose() bool {
	return getBool(c.Verbose, false)
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".reqforge.json",
	"reqforge.config.json",
	".reqforgerc",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks values that have a fixed set of choices.
func (c *Config) Validate() error {
	switch c.Output {
	case "", OutputConsole, OutputJSON:
		return nil
	default:
		return fmt.Errorf("unknown output %q (expected %s or %s)", c.Output, OutputConsole, OutputJSON)
	}
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.EnvFile != "" {
		result.EnvFile = other.EnvFile
	}
	if other.Output != "" {
		result.Output = other.Output
	}
	if other.Timeout > 0 {
		result.Timeout = other.Timeout
	}

	// Boolean flags - only override if explicitly set in other config
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.Verbose != nil {
		result.Verbose = other.Verbose
	}

	result.Variables = mergeMaps(c.Variables, other.Variables)
	result.Headers = mergeMaps(c.Headers, other.Headers)

	return &result
}

func mergeMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
