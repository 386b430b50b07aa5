package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/evcraddock/lease-desk/internal/logging"
)

const defaultPort = 8080

// Config holds leasedesk settings read from disk.
type Config struct {
	Port int  `yaml:"port,omitempty"`
	Dev  bool `yaml:"dev,omitempty"`
}

// configPath returns the path to the config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "leasedesk", "config.yaml"), nil
}

// loadConfig reads the config from disk.
// Returns a zero-value config if the file doesn't exist.
func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// loadEnv reads a .env file from the working directory, if present.
// Variables already set in the environment win.
func loadEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// resolveConfig merges the config file with environment overrides.
func resolveConfig() (Config, error) {
	if err := loadEnv(); err != nil {
		return Config{}, err
	}

	cfg, err := loadConfig()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv("LEASEDESK_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid LEASEDESK_PORT %q", v)
		}
		cfg.Port = port
	}
	if v := os.Getenv("LEASEDESK_DEV"); v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LEASEDESK_DEV %q", v)
		}
		cfg.Dev = dev
	}

	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	return cfg, nil
}

// setupLogging configures slog from the resolved config.
func setupLogging(w io.Writer) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	logging.SetupWriter(w, cfg.Dev)
	return nil
}
