// Package config loads the server configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the serve command looks for configuration when no
// --config flag is given.
const DefaultPath = "formgate.yaml"

// Config is the structure of formgate.yaml.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`

	// Store selects the schema backend: memory, redis or file.
	Store string `yaml:"store"`

	Redis RedisConfig `yaml:"redis"`

	// FilePath is the schema directory for the file backend.
	FilePath string `yaml:"filePath"`

	// CORSOrigins overrides the default allowed origins when non-empty.
	CORSOrigins []string `yaml:"corsOrigins"`

	// Seed registers the starter schemas on boot.
	Seed bool `yaml:"seed"`
}

// RedisConfig holds the redis backend settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
		Store:    "memory",
		Seed:     true,
	}
}

// Load reads the configuration from path. A missing file is not an error:
// the defaults are returned, so a bare `formgate serve` just works.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
