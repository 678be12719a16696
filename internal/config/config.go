// Package config loads the optional .readmepin.yaml configuration file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/readmepin/internal/normalize"
	"git.home.luguber.info/inful/readmepin/internal/util/sets"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = ".readmepin.yaml"

// Config represents the application configuration.
type Config struct {
	// Remote is the git remote whose URL identifies the repository.
	Remote string `yaml:"remote"`
	// Host is the forge host the remote URL must match.
	Host string `yaml:"host"`
	// RawBase is the URL prefix serving raw repository content.
	RawBase string `yaml:"raw_base"`
	// Extensions overrides the default allowed image extensions.
	Extensions []string `yaml:"extensions,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the specified file. A missing file is
// not an error; defaults are returned so the tool works out of the box.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	if err := loadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
	}

	if configPath == "" {
		configPath = DefaultPath
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Remote == "" {
		c.Remote = "origin"
	}
	if c.Host == "" {
		c.Host = "github.com"
	}
	if c.RawBase == "" {
		c.RawBase = "https://raw.githubusercontent.com"
	}
}

// BaseURL builds the absolute URL prefix for raw content of repo at ref.
// repo is an "owner/name" pair and ref a commit hash or symbolic name.
func (c *Config) BaseURL(repo, ref string) string {
	return fmt.Sprintf("%s/%s/%s/", strings.TrimRight(c.RawBase, "/"), repo, ref)
}

// AllowedExtensions returns the configured extension set, lowercased and
// dot-prefixed, or the built-in defaults when none are configured.
func (c *Config) AllowedExtensions() sets.Set[string] {
	if len(c.Extensions) == 0 {
		return normalize.DefaultExtensions()
	}
	allowed := sets.New[string]()
	for _, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed.Add(ext)
	}
	return allowed
}

// loadEnvFile loads environment variables from a sibling .env file.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}
