// Package config provides configuration loading and validation for the
// powerfang CLI.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidInputFormat = errors.New("invalid input format")
	ErrInvalidColorMode   = errors.New("invalid color mode")
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidLogFormat   = errors.New("invalid log format")
)

// Allowed enumeration values.
var (
	inputFormats = []string{"auto", "json", "yaml"}
	colorModes   = []string{"auto", "always", "never"}
	logLevels    = []string{"debug", "info", "warn", "error"}
	logFormats   = []string{"text", "json"}
)

// Config holds all configuration for the powerfang CLI.
type Config struct {
	Input   InputConfig   `mapstructure:"input"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig controls how tree documents are read.
type InputConfig struct {
	// Format selects the document codec: "json", "yaml" or "auto" to pick
	// by file extension.
	Format string `mapstructure:"format"`

	// Validate runs schema validation before decoding.
	Validate bool `mapstructure:"validate"`
}

// OutputConfig controls how rendered source is written.
type OutputConfig struct {
	// Path is the output file; empty or "-" means stdout.
	Path string `mapstructure:"path"`

	// Color controls diff colorization: "auto", "always" or "never".
	Color string `mapstructure:"color"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Load loads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("powerfang")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME/.config/powerfang")
	}

	viperCfg.SetEnvPrefix("POWERFANG")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validate(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("input.format", "auto")
	viperCfg.SetDefault("input.validate", false)

	viperCfg.SetDefault("output.path", "")
	viperCfg.SetDefault("output.color", "auto")

	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.format", "text")
	viperCfg.SetDefault("logging.output", "stderr")
}

func validate(config *Config) error {
	if !slices.Contains(inputFormats, config.Input.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidInputFormat, config.Input.Format)
	}

	if !slices.Contains(colorModes, config.Output.Color) {
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, config.Output.Color)
	}

	if !slices.Contains(logLevels, config.Logging.Level) {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	if !slices.Contains(logFormats, config.Logging.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	return nil
}
