package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v3"

	"skabillium/linear/cmd/db"
	"skabillium/linear/cmd/reply"
)

const DefaultConfigPath = "configs/linear.yaml"

type Config struct {
	LogLevel     string `yaml:"log_level"`
	Format       string `yaml:"format"`
	Prompt       string `yaml:"prompt"`
	QueueKind    string `yaml:"queue_kind"`
	StackKind    string `yaml:"stack_kind"`
	RingCapacity int    `yaml:"ring_capacity"`

	// Script is only set from the command line.
	Script string `yaml:"-"`
}

func DefaultConfig() *Config {
	opts := db.DefaultOptions()
	return &Config{
		LogLevel:     "warn",
		Format:       reply.FormatPlain,
		Prompt:       "linear> ",
		QueueKind:    opts.QueueKind,
		StackKind:    opts.StackKind,
		RingCapacity: opts.RingCapacity,
	}
}

// LoadConfig reads a YAML file over the defaults. A missing file is only
// an error when the caller asked for that file explicitly.
func LoadConfig(path string, explicit bool) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("LINEAR_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LINEAR_FORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("LINEAR_RING_CAPACITY"); v != "" {
		capacity, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid LINEAR_RING_CAPACITY '%s': %w", v, err)
		}
		c.RingCapacity = capacity
	}
	return nil
}

func (c *Config) DatabaseOptions() db.Options {
	return db.Options{QueueKind: c.QueueKind, StackKind: c.StackKind, RingCapacity: c.RingCapacity}
}

func (c *Config) Validate() error {
	if _, err := reply.NewEncoder(c.Format); err != nil {
		return err
	}
	return c.DatabaseOptions().Validate()
}

// getOptions resolves the configuration from flags, the environment
// (including a .env file) and the YAML config file, in that order of
// precedence.
func getOptions(args []string) (*Config, error) {
	var (
		configPath string
		script     string
		scriptSr   string
		format     string
		formatSr   string
		logLevel   string
	)

	fs := flag.NewFlagSet("linear", flag.ContinueOnError)
	fs.StringVar(&configPath, "config", "", "Path to the YAML config file")
	fs.StringVar(&script, "script", "", "Run commands from a file instead of stdin")
	fs.StringVar(&scriptSr, "s", "", "Shorthand for script")
	fs.StringVar(&format, "format", "", "Reply format: plain or resp")
	fs.StringVar(&formatSr, "f", "", "Shorthand for format")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// A missing .env is normal outside development.
	_ = godotenv.Load()

	explicit := true
	if configPath == "" {
		configPath = os.Getenv("LINEAR_CONFIG_PATH")
	}
	if configPath == "" {
		configPath = DefaultConfigPath
		explicit = false
	}

	cfg, err := LoadConfig(configPath, explicit)
	if err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if script == "" {
		script = scriptSr
	}
	cfg.Script = script

	if format == "" {
		format = formatSr
	}
	if format != "" {
		cfg.Format = format
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
