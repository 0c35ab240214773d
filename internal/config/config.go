// Package config loads radargen configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the radargen configuration file
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the radargen configuration directory
const ConfigDirName = ".radargen"

// Config holds all radargen configuration
type Config struct {
	Google GoogleConfig `yaml:"google"`
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
}

// GoogleConfig holds Google Sheets API access configuration
type GoogleConfig struct {
	// APIKey authorizes reads of publicly shared documents.
	APIKey string `yaml:"api_key"`
	// CredentialsFile points at a service-account key used for
	// access-controlled documents.
	CredentialsFile string `yaml:"credentials_file"`
}

// SourceConfig holds the default document selection
type SourceConfig struct {
	// Reference is the document read when none is given on the command
	// line: a sheet URL or id, or a .csv/.json/.xlsx path.
	Reference string `yaml:"reference"`
	// SheetName selects a sheet tab; empty means the first one.
	SheetName string `yaml:"sheet_name"`
}

// OutputConfig holds configuration for rendering output
type OutputConfig struct {
	// Pretty toggles indented JSON.
	Pretty bool `yaml:"pretty"`
	// ViewportHeight feeds the canvas size hint.
	ViewportHeight int `yaml:"viewport_height"`
}

// ServerConfig holds configuration for the HTTP server
type ServerConfig struct {
	Addr                string `yaml:"addr"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
}

// ReadTimeout returns the server read timeout as a duration.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the server write timeout as a duration.
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// ErrConfigNotFound is returned when no config file can be found
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from .radargen/config.yaml, falling back to defaults.
// It searches for the config directory starting from workDir and walking up
// the directory tree. If no config is found, returns defaults.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		// No config dir found, return defaults
		return DefaultConfig(), nil
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	return LoadFromPath(configPath)
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merged := Merge(loaded, DefaultConfig())

	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// FindConfigDir locates the .radargen directory by walking up from startDir.
// Returns the path to the .radargen directory if found.
func FindConfigDir(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root, config not found
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// EnsureConfigDir creates the .radargen directory if it doesn't exist.
// Returns the path to the .radargen directory.
func EnsureConfigDir(workDir string) (string, error) {
	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	configDir := filepath.Join(absDir, ConfigDirName)

	info, err := os.Stat(configDir)
	if err == nil {
		if info.IsDir() {
			return configDir, nil
		}
		return "", fmt.Errorf("%s exists but is not a directory", configDir)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	return configDir, nil
}

// Validate checks that config values are valid.
// Returns an error if validation fails.
func Validate(cfg *Config) error {
	if cfg.Server.Addr == "" {
		return fmt.Errorf("%w: server addr must not be empty", ErrInvalidConfig)
	}

	if cfg.Server.ReadTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: read_timeout_seconds must be positive, got %d",
			ErrInvalidConfig, cfg.Server.ReadTimeoutSeconds)
	}

	if cfg.Server.WriteTimeoutSeconds <= 0 {
		return fmt.Errorf("%w: write_timeout_seconds must be positive, got %d",
			ErrInvalidConfig, cfg.Server.WriteTimeoutSeconds)
	}

	if cfg.Output.ViewportHeight < 0 {
		return fmt.Errorf("%w: viewport_height must be non-negative, got %d",
			ErrInvalidConfig, cfg.Output.ViewportHeight)
	}

	return nil
}

// SaveDefault writes the default configuration to .radargen/config.yaml in
// workDir. Creates the .radargen directory if it doesn't exist.
func SaveDefault(workDir string) (string, error) {
	configDir, err := EnsureConfigDir(workDir)
	if err != nil {
		return "", err
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists: %s", configPath)
	}

	cfg := DefaultConfig()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling config: %w", err)
	}

	header := "# radargen configuration\n\n"
	data = append([]byte(header), data...)

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing config file: %w", err)
	}

	return configPath, nil
}
