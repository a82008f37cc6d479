// Package config handles configuration loading and validation for codelytics.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigFile is the default configuration file name (without extension).
	DefaultConfigFile = ".codelytics"
	// DefaultConfigType is the default configuration file type.
	DefaultConfigType = "yaml"
)

// Config holds all configuration for codelytics.
type Config struct {
	// Analyze contains directory analysis configuration.
	Analyze AnalyzeConfig `mapstructure:"analyze"`
	// Git contains repository metadata configuration.
	Git GitConfig `mapstructure:"git"`
	// PDF contains report PDF configuration.
	PDF PDFConfig `mapstructure:"pdf"`
}

// AnalyzeConfig holds directory analysis configuration.
type AnalyzeConfig struct {
	// Ignore lists glob patterns to exclude from the walk, on top of the
	// built-in version-control exclusions.
	Ignore []string `mapstructure:"ignore"`
	// Workers bounds the per-file extraction fan-out. Zero means one
	// worker per CPU.
	Workers int `mapstructure:"workers"`
}

// GitConfig holds repository metadata configuration.
type GitConfig struct {
	// Ref is the ref whose commits are counted. "--all" counts commits
	// on every branch.
	Ref string `mapstructure:"ref"`
}

// PDFConfig holds report PDF configuration.
type PDFConfig struct {
	// IgnorePages lists pages excluded from word counting: page numbers
	// ("3") or open ranges (">10").
	IgnorePages []string `mapstructure:"ignore_pages"`
}

// Load loads configuration from file, environment variables, and defaults.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Check if a specific config file was set via CLI flag (stored in global viper)
	globalViper := viper.GetViper()
	if configFile := globalViper.GetString("config_file"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigFile)
		v.SetConfigType(DefaultConfigType)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CODELYTICS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Analyze.Workers < 0 {
		return fmt.Errorf("analyze workers must not be negative, got %d", c.Analyze.Workers)
	}

	if ref := c.Git.Ref; ref != "" && ref != "--all" && strings.HasPrefix(ref, "-") {
		return fmt.Errorf("git ref must be a ref name or '--all', got %q", ref)
	}

	for _, rule := range c.PDF.IgnorePages {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			return fmt.Errorf("pdf ignore_pages entries must not be empty")
		}
	}

	return nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("analyze.ignore", []string{
		"**/__pycache__/**",
		"**/.ipynb_checkpoints/**",
		"**/node_modules/**",
		"**/venv/**",
		"**/.venv/**",
		"**/dist/**",
		"**/build/**",
	})
	v.SetDefault("analyze.workers", 0)

	v.SetDefault("git.ref", "HEAD")

	v.SetDefault("pdf.ignore_pages", []string{})
}
