// Package config handles CLI configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/petal-labs/sous/core"
)

// Defaults applied when the config file omits a field.
const (
	DefaultProvider          = "openai"
	DefaultModel             = "gpt-4o"
	DefaultListenAddr        = ":8080"
	DefaultCompletionTimeout = 30
	DefaultToolTimeout       = 10
)

// Config represents the CLI configuration.
type Config struct {
	Provider   string `yaml:"provider"`
	Model      string `yaml:"model"`
	Convention string `yaml:"convention,omitempty"`
	ListenAddr string `yaml:"listen_addr,omitempty"`

	// ExposedTools restricts which registered tools the model sees.
	// Empty means every registered tool.
	ExposedTools []string `yaml:"exposed_tools,omitempty"`

	CompletionTimeoutSeconds int `yaml:"completion_timeout_seconds,omitempty"`
	ToolTimeoutSeconds       int `yaml:"tool_timeout_seconds,omitempty"`
	MaxParallelTools         int `yaml:"max_parallel_tools,omitempty"`

	Providers map[string]ProviderConfig `yaml:"providers,omitempty"`
}

// ProviderConfig holds configuration for a specific provider.
type ProviderConfig struct {
	// APIKeyEnv names the environment variable consulted when the
	// keystore has no key for this provider.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`
	BaseURL   string `yaml:"base_url,omitempty"`
}

// DefaultConfigPath returns the default configuration file path for the current platform.
// - macOS/Linux: ~/.sous/config.yaml
// - Windows: %USERPROFILE%\.sous\config.yaml
func DefaultConfigPath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		// Fallback to current directory
		return "config.yaml"
	}

	return filepath.Join(homeDir, ".sous", "config.yaml")
}

// LoadConfig loads configuration from the specified path.
// A missing file yields the defaults without error; a file that exists but
// cannot be read or parsed is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.CompletionTimeoutSeconds == 0 {
		c.CompletionTimeoutSeconds = DefaultCompletionTimeout
	}
	if c.ToolTimeoutSeconds == 0 {
		c.ToolTimeoutSeconds = DefaultToolTimeout
	}
	if c.Providers == nil {
		c.Providers = make(map[string]ProviderConfig)
	}
}

func (c *Config) validate() error {
	switch core.APIConvention(c.Convention) {
	case "", core.ConventionCompletions, core.ConventionResponses:
	default:
		return fmt.Errorf("invalid convention %q (want %q or %q)",
			c.Convention, core.ConventionCompletions, core.ConventionResponses)
	}

	if c.CompletionTimeoutSeconds < 0 {
		return fmt.Errorf("completion_timeout_seconds must not be negative")
	}
	if c.ToolTimeoutSeconds < 0 {
		return fmt.Errorf("tool_timeout_seconds must not be negative")
	}
	if c.MaxParallelTools < 0 {
		return fmt.Errorf("max_parallel_tools must not be negative")
	}

	return nil
}

// CompletionTimeout returns the per-completion deadline.
func (c *Config) CompletionTimeout() time.Duration {
	return time.Duration(c.CompletionTimeoutSeconds) * time.Second
}

// ToolTimeout returns the per-tool-call deadline.
func (c *Config) ToolTimeout() time.Duration {
	return time.Duration(c.ToolTimeoutSeconds) * time.Second
}

// GetProvider returns the provider config for the given ID.
// Returns nil if the provider is not configured.
func (c *Config) GetProvider(id string) *ProviderConfig {
	if c.Providers == nil {
		return nil
	}
	if pc, ok := c.Providers[id]; ok {
		return &pc
	}
	return nil
}
