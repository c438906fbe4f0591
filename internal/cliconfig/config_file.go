package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	ServiceURL  string `toml:"service_url"`
	Relation    string `toml:"relation"`
	MaxResults  int    `toml:"max_results"`
	GroupBy     string `toml:"group_by"`
	JSON        *bool  `toml:"json"`
	OutPath     string `toml:"out_path"`
	WatchPath   string `toml:"watch_path"`
	Interactive *bool  `toml:"interactive"`
	HTTPTimeout string `toml:"http_timeout"`
	Debounce    string `toml:"debounce"`
	LogLevel    string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.muse/config.toml if the user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".muse", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("service-url", fc.ServiceURL, &cfg.ServiceURL)
	s.setString("rel", fc.Relation, &cfg.Relation)
	s.setString("group-by", fc.GroupBy, &cfg.GroupBy)
	s.setString("out", fc.OutPath, &cfg.OutPath)
	s.setString("watch", fc.WatchPath, &cfg.WatchPath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("max", fc.MaxResults, &cfg.MaxResults)

	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setBool("json", fc.JSON, &cfg.JSON)
	s.setBool("interactive", fc.Interactive, &cfg.Interactive)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
