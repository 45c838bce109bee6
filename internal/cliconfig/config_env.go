package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (FILEORG_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("origin", os.Getenv("FILEORG_ORIGIN"), &cfg.Origin)
	s.setString("destination", os.Getenv("FILEORG_DESTINATION"), &cfg.Destination)
	s.setString("order", os.Getenv("FILEORG_ORDER"), &cfg.Order)
	s.setString("pattern", os.Getenv("FILEORG_PATTERN"), &cfg.Pattern)
	s.setString("digits", os.Getenv("FILEORG_DIGITS"), &cfg.Digits)
	s.setString("placement", os.Getenv("FILEORG_PLACEMENT"), &cfg.Placement)
	s.setString("token", os.Getenv("FILEORG_TOKEN"), &cfg.Token)
	s.setString("remove-chars", os.Getenv("FILEORG_REMOVE_CHARS"), &cfg.RemoveChars)
	s.setString("report", os.Getenv("FILEORG_REPORT"), &cfg.Report)
	s.setString("log-level", os.Getenv("FILEORG_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setDuration("debounce", os.Getenv("FILEORG_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("number-before-pattern", os.Getenv("FILEORG_NUMBER_BEFORE_PATTERN"), &cfg.NumberBeforePattern)
	s.setBoolFromString("numbering", os.Getenv("FILEORG_NUMBERING"), &cfg.Numbering)
	s.setBoolFromString("remove", os.Getenv("FILEORG_REMOVE"), &cfg.Remove)
	s.setBoolFromString("lowercase", os.Getenv("FILEORG_LOWERCASE"), &cfg.Lowercase)
	s.setBoolFromString("duplicate", os.Getenv("FILEORG_DUPLICATE"), &cfg.Duplicate)
	s.setBoolFromString("replace", os.Getenv("FILEORG_REPLACE"), &cfg.Replace)

	return nil
}
