// Package config loads the settings of the jsonrpcinspect command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

// Config holds the options shared by every jsonrpcinspect command.
type Config struct {
	Pretty   bool   `mapstructure:"pretty"`
	Lines    bool   `mapstructure:"lines"`
	Strict   bool   `mapstructure:"strict"`
	LogLevel string `mapstructure:"log_level"`
}

// Level is the configured log level, info when it cannot be parsed.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// New returns a viper instance with defaults set, reading JSONRPC_* variables
// from the environment.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("pretty", false)
	v.SetDefault("lines", false)
	v.SetDefault("strict", false)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("JSONRPC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file and decodes the merged settings. An empty file
// looks for jsonrpcinspect.yaml in the given paths and the working directory;
// a missing file is not an error then.
func Load(v *viper.Viper, file string, paths ...string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("jsonrpcinspect")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		for _, path := range paths {
			if path != "" {
				v.AddConfigPath(path)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Debug("config file not found, using defaults and environment")
	} else {
		log.Debug("using config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		log.Warn("invalid log level, defaulting to info", "level", cfg.LogLevel)
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
