package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (MUSE_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("service-url", os.Getenv("MUSE_SERVICE_URL"), &cfg.ServiceURL)
	s.setString("rel", os.Getenv("MUSE_RELATION"), &cfg.Relation)
	s.setString("group-by", os.Getenv("MUSE_GROUP_BY"), &cfg.GroupBy)
	s.setString("out", os.Getenv("MUSE_OUT_PATH"), &cfg.OutPath)
	s.setString("watch", os.Getenv("MUSE_WATCH_PATH"), &cfg.WatchPath)
	s.setString("log-level", os.Getenv("MUSE_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("max", os.Getenv("MUSE_MAX_RESULTS"), &cfg.MaxResults); err != nil {
		return err
	}

	if err := s.setDuration("timeout", os.Getenv("MUSE_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("MUSE_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("json", os.Getenv("MUSE_JSON"), &cfg.JSON)
	s.setBoolFromString("interactive", os.Getenv("MUSE_INTERACTIVE"), &cfg.Interactive)

	return nil
}
