// Package config holds program configuration and logger preparation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/sebieire/csscade/merge"
)

type (
	// MergeConfig selects merge engine strategies.
	MergeConfig struct {
		ImportantStrategy string `yaml:"important_strategy"`
		ShorthandStrategy string `yaml:"shorthand_strategy"`
		Workers           int    `yaml:"workers"`
	}

	// LoggerConfig configures a single log sink.
	LoggerConfig struct {
		Level string `yaml:"level"` // none, normal, debug
	}

	// LoggingConfig groups log sinks.
	LoggingConfig struct {
		ConsoleLogger LoggerConfig `yaml:"console"`
	}

	// Config is the full program configuration.
	Config struct {
		Merge   MergeConfig   `yaml:"merge"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Merge: MergeConfig{
			ImportantStrategy: string(merge.ImportantMatch),
			ShorthandStrategy: string(merge.ShorthandSmart),
			Workers:           4,
		},
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
		},
	}
}

// EngineOptions converts the merge section into engine options. Unknown
// strategy names fall back to the defaults; the engine reports them again
// per call as warnings.
func (conf *MergeConfig) EngineOptions() merge.Options {
	important, _ := merge.ParseImportantStrategy(conf.ImportantStrategy)
	shorthand, _ := merge.ParseShorthandStrategy(conf.ShorthandStrategy)
	return merge.Options{Important: important, Shorthand: shorthand}
}

// LoadConfiguration reads configuration from path, or returns defaults when
// path is empty. Unknown fields in the file are rejected.
func LoadConfiguration(path string) (*Config, error) {
	cfg := Default()
	if len(path) == 0 {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read configuration (%s): %w", path, err)
	}

	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to parse configuration (%s): %w", path, err)
	}

	if cfg.Merge.Workers < 1 {
		return nil, fmt.Errorf("invalid workers count in configuration (%s): %d", path, cfg.Merge.Workers)
	}
	return cfg, nil
}

// Dump serializes the processed configuration back to YAML.
func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to serialize configuration: %w", err)
	}
	return data, nil
}
