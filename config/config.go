// Package config loads routing configuration for the linkcheck tool
// from YAML files. The library itself is configured programmatically;
// this layer only translates file contents into a logger.Config.
package config

import (
	"fmt"
	"os"

	"go.uber.org/config"

	"github.com/tarbeck/debuglink/logger"
)

// LoggerConfig mirrors the logger section of the YAML files:
//
//	logger:
//	  threshold: debug
//	  streams:
//	    debug: stdout
//	    info: stdout
type LoggerConfig struct {
	Threshold string            `yaml:"threshold"`
	Streams   map[string]string `yaml:"streams"`
}

// AppConfig holds all linkcheck configuration.
type AppConfig struct {
	Logger LoggerConfig `yaml:"logger"`
}

// Load reads configuration from the specified YAML files.
// Files are merged in order, with later files overriding earlier ones.
// Missing files are silently ignored; if none exist, Load returns
// os.ErrNotExist.
func Load(files ...string) (*AppConfig, error) {
	opts := make([]config.YAMLOption, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			opts = append(opts, config.File(f))
		}
	}

	if len(opts) == 0 {
		return nil, os.ErrNotExist
	}

	provider, err := config.NewYAML(opts...)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := provider.Get(config.Root).Populate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration with sensible defaults. A
// missing file set is not an error; the defaults alone apply.
func LoadWithDefaults(files ...string) (*AppConfig, error) {
	cfg, err := Load(files...)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		cfg = &AppConfig{}
	}

	if cfg.Logger.Threshold == "" {
		cfg.Logger.Threshold = "info"
	}

	return cfg, nil
}

// Build translates the YAML section into a logger.Config, applying each
// named stream override on top of the defaults.
func (c LoggerConfig) Build() (logger.Config, error) {
	threshold, err := logger.ParseLevel(c.Threshold)
	if err != nil {
		return logger.Config{}, fmt.Errorf("threshold: %w", err)
	}

	cfg := logger.NewConfig(threshold)
	for levelName, streamName := range c.Streams {
		level, err := logger.ParseLevel(levelName)
		if err != nil {
			return logger.Config{}, fmt.Errorf("streams: %w", err)
		}
		stream, err := logger.ParseStream(streamName)
		if err != nil {
			return logger.Config{}, fmt.Errorf("streams.%s: %w", level, err)
		}

		switch level {
		case logger.LevelTrace:
			cfg = cfg.WithTraceStream(stream)
		case logger.LevelDebug:
			cfg = cfg.WithDebugStream(stream)
		case logger.LevelInfo:
			cfg = cfg.WithInfoStream(stream)
		case logger.LevelWarn:
			cfg = cfg.WithWarnStream(stream)
		case logger.LevelError:
			cfg = cfg.WithErrorStream(stream)
		}
	}

	return cfg, nil
}
