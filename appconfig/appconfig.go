package appconfig

import (
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// AppConfig holds the CLI settings. Every field can be set from the
// environment.
type AppConfig struct {
	LogLevel string `yaml:"log_level" json:"log_level" toml:"log_level" env:"POKERHAND_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	Workers  int    `yaml:"workers" json:"workers" toml:"workers" env:"POKERHAND_WORKERS" env-default:"4" env-description:"players evaluated concurrently"`
	Output   string `yaml:"output" json:"output" toml:"output" env:"POKERHAND_OUTPUT" env-default:"text" env-description:"text or json"`
}

// LoadAppConfig reads the config file at path, if any, then environment
// variables, which take precedence.
func LoadAppConfig(path string) (*AppConfig, error) {
	cfg := &AppConfig{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the log level, the output format and the worker count.
// Zero workers means one per CPU.
func (c *AppConfig) Validate() error {
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("invalid output %q, expected %q or %q", c.Output, OutputText, OutputJSON)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count %d", c.Workers)
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c *AppConfig) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// Usage describes the environment variables understood by LoadAppConfig.
func Usage() (string, error) {
	header := "Environment variables:"
	return cleanenv.GetDescription(&AppConfig{}, &header)
}
