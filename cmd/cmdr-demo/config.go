package main

import (
	"errors"
	"fmt"
	"gopkg.in/yaml.v3"
	"io"
	"os"
)

// Config is read from the file given with --config.
// Flags that are set explicitly take precedence over the file.
type Config struct {
	// Prompt is shown before each line in the main scope.
	Prompt string `yaml:"prompt"`
	// Greeting is written when the main scope starts.
	Greeting string `yaml:"greeting"`
	// Language selects message translations. Only "en" and "nl" are known.
	Language string `yaml:"language"`
	// EmptyLineError reports empty lines instead of ignoring them.
	// When it's nil the environment or the default decides.
	EmptyLineError *bool `yaml:"empty_line_error,omitempty"`
	// Suggestions is how many similar commands are offered for a typo.
	Suggestions *int `yaml:"suggestions,omitempty"`
}

var ErrUnknownLanguage = errors.New("unknown language")

// DefaultConfig is used when no file is given.
func DefaultConfig() Config {
	return Config{
		Prompt:   "demo>",
		Greeting: "Welcome! Type 'help' to see what you can do.",
		Language: "en",
	}
}

// LoadConfig reads a YAML config file over the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	if len(path) == 0 {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return ParseConfig(f)
}

// ParseConfig decodes a YAML document over the defaults.
// Unknown keys are rejected so typos don't go unnoticed.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, ok := translations[c.Language]; !ok {
		return fmt.Errorf("%w: '%s'", ErrUnknownLanguage, c.Language)
	}
	if c.Suggestions != nil && *c.Suggestions < 0 {
		return fmt.Errorf("suggestions must not be negative, got %d", *c.Suggestions)
	}
	return nil
}
