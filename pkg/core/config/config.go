package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	herror "github.com/msto63/helper/foundation/core/error"
	"github.com/msto63/helper/foundation/core/log"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "HELPER_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Fleet   FleetConfig   `toml:"fleet" yaml:"fleet"`

	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name        string `toml:"name" yaml:"name"`
	Environment string `toml:"environment" yaml:"environment"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level        string `toml:"level" yaml:"level"`
	Format       string `toml:"format" yaml:"format"`
	File         string `toml:"file" yaml:"file"`
	EnableCaller bool   `toml:"enable_caller" yaml:"enable_caller"`
}

// FleetConfig holds the fleet API client settings. Endpoints entries
// override or extend the built-in environment table.
type FleetConfig struct {
	Endpoints     map[string]string `toml:"endpoints" yaml:"endpoints"`
	Username      string            `toml:"username" yaml:"username"`
	Password      string            `toml:"password" yaml:"password"`
	Timeout       Duration          `toml:"timeout" yaml:"timeout"`
	RaiseErrors   bool              `toml:"raise_errors" yaml:"raise_errors"`
	VPNConfigDir  string            `toml:"vpn_config_dir" yaml:"vpn_config_dir"`
	ContainerRoot string            `toml:"container_root" yaml:"container_root"`
}

// Duration wraps time.Duration for TOML and YAML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML parses a duration scalar
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, herror.Newf("config file not found: %s", path).
			WithCode(herror.CodeMissingConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	if err := decodeFile(path, &cfg); err != nil {
		return nil, herror.Wrap(err, "failed to parse config").
			WithCode(herror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in sensitive fields
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.path = path
	return &cfg, nil
}

// LoadFromEnv loads configuration from the HELPER_CONFIG environment
// variable, falling back to the default locations
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, herror.New("no config file found, set HELPER_CONFIG or create configs/helper.toml").
			WithCode(herror.CodeMissingConfig).
			WithOperation("config.LoadFromEnv")
	}

	return Load(path)
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	return []string{
		"./configs/helper.toml",
		"./configs/helper.yaml",
		"./helper.toml",
		"./helper.yaml",
		filepath.Join(os.Getenv("HOME"), ".config/helper/config.toml"),
	}
}

// Path returns the file the configuration was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

// Validate checks values that defaults cannot repair
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		return herror.Wrap(err, "invalid logging level").
			WithCode(herror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("level", c.Logging.Level)
	}
	if _, err := log.ParseFormat(c.Logging.Format); err != nil {
		return herror.Wrap(err, "invalid logging format").
			WithCode(herror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("format", c.Logging.Format)
	}
	if c.Fleet.Timeout.Duration < 0 {
		return herror.Newf("fleet timeout must not be negative, got %s", c.Fleet.Timeout.Duration).
			WithCode(herror.CodeInvalidConfig).
			WithOperation("config.Validate")
	}
	return nil
}

func decodeFile(path string, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(content, cfg)
	case ".toml", "":
		_, err := toml.DecodeFile(path, cfg)
		return err
	default:
		return fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "helper"
	}
	if c.General.Environment == "" {
		c.General.Environment = "dev_web"
	}

	// Logging
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	// Fleet
	if c.Fleet.Timeout.Duration == 0 {
		c.Fleet.Timeout.Duration = 30 * time.Second
	}
	if c.Fleet.VPNConfigDir == "" {
		c.Fleet.VPNConfigDir = "./image_files/vpn/configs"
	}
	if c.Fleet.ContainerRoot == "" {
		c.Fleet.ContainerRoot = "/code"
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Fleet.Username = os.ExpandEnv(c.Fleet.Username)
	c.Fleet.Password = os.ExpandEnv(c.Fleet.Password)
	c.Fleet.VPNConfigDir = os.ExpandEnv(c.Fleet.VPNConfigDir)
	c.Logging.File = os.ExpandEnv(c.Logging.File)
	for env, url := range c.Fleet.Endpoints {
		c.Fleet.Endpoints[env] = os.ExpandEnv(url)
	}
}
