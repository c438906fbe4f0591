package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/lexlabs/muse/internal/domain"
)

// DefaultServiceURL is the default word-association service endpoint.
const DefaultServiceURL = "https://api.datamuse.com"

// MaxResultsCeiling is the largest result cap the service honors.
const MaxResultsCeiling = 1000

// Config holds CLI configuration for muse.
type Config struct {
	ServiceURL string
	Relation   string

	MaxResults int
	GroupBy    string
	JSON       bool

	OutPath     string
	WatchPath   string
	Interactive bool

	HTTPTimeout time.Duration
	Debounce    time.Duration
	LogLevel    string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		ServiceURL:  DefaultServiceURL,
		Relation:    string(domain.Rhymes),
		MaxResults:  100,
		HTTPTimeout: 15 * time.Second,
		Debounce:    200 * time.Millisecond,
		LogLevel:    "info",
	}
}

// Validate checks the configuration for errors and normalizes derived values.
func (c *Config) Validate() error {
	if c.ServiceURL == "" {
		c.ServiceURL = DefaultServiceURL
	}
	// Ensure no trailing slash
	if c.ServiceURL[len(c.ServiceURL)-1] == '/' {
		c.ServiceURL = c.ServiceURL[:len(c.ServiceURL)-1]
	}

	if _, err := domain.ParseRelation(c.Relation); err != nil {
		return err
	}

	if c.MaxResults < 0 {
		return fmt.Errorf("max-results must not be negative")
	}
	if c.MaxResults > MaxResultsCeiling {
		return fmt.Errorf("max-results must not exceed %d", MaxResultsCeiling)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}

	if c.Interactive && c.WatchPath != "" {
		return fmt.Errorf("watch and interactive modes are mutually exclusive")
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("parse log-level: %w", err)
	}

	return nil
}

// Logger builds the console logger used by the CLI.
func Logger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
