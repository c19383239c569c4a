package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort          = "3000"
	DefaultGitHubAPIURL  = "https://api.github.com"
	DefaultGitHubTimeout = 10 * time.Second
	DefaultOutputDir     = "."
	DefaultLogLevel      = "info"
)

// Config holds runtime settings. Values come from an optional YAML file,
// then a .env file, then the process environment, later sources winning.
type Config struct {
	Port          string        `yaml:"port"`
	GitHubAPIURL  string        `yaml:"github_api_url"`
	GitHubToken   string        `yaml:"github_token,omitempty"`
	GitHubTimeout time.Duration `yaml:"github_timeout"`
	DatabaseURL   string        `yaml:"database_url,omitempty"`
	OutputDir     string        `yaml:"output_dir"`
	LogLevel      string        `yaml:"log_level"`
}

// Defaults returns a Config populated with built-in defaults.
func Defaults() *Config {
	return &Config{
		Port:          DefaultPort,
		GitHubAPIURL:  DefaultGitHubAPIURL,
		GitHubTimeout: DefaultGitHubTimeout,
		OutputDir:     DefaultOutputDir,
		LogLevel:      DefaultLogLevel,
	}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment are used.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	c.Port = getEnv("PORT", c.Port)
	c.GitHubAPIURL = getEnv("GITHUB_API_URL", c.GitHubAPIURL)
	// DEV_METRICS_TOKEN is accepted for setups that already export it.
	c.GitHubToken = getEnv("DEV_METRICS_TOKEN", c.GitHubToken)
	c.GitHubToken = getEnv("GITHUB_TOKEN", c.GitHubToken)
	c.DatabaseURL = getEnv("DATABASE_URL", c.DatabaseURL)
	c.OutputDir = getEnv("OUTPUT_DIR", c.OutputDir)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	if v := os.Getenv("GITHUB_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GITHUB_TIMEOUT: %w", err)
		}
		c.GitHubTimeout = d
	}
	return nil
}

// Validate checks the configuration for values the services cannot run with.
func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.GitHubAPIURL == "" {
		return errors.New("github_api_url is required")
	}
	if c.GitHubTimeout <= 0 {
		return fmt.Errorf("github_timeout must be positive, got %s", c.GitHubTimeout)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
