package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config for TOML files. Durations are strings and
// booleans are pointers so an absent key leaves the default alone.
type FileConfig struct {
	Origin              string `toml:"origin"`
	Destination         string `toml:"destination"`
	Order               string `toml:"order"`
	Pattern             string `toml:"pattern"`
	NumberBeforePattern *bool  `toml:"number_before_pattern"`
	Numbering           *bool  `toml:"numbering"`
	Digits              string `toml:"digits"`
	Placement           string `toml:"placement"`
	Token               string `toml:"token"`
	Remove              *bool  `toml:"remove"`
	RemoveChars         string `toml:"remove_chars"`
	Lowercase           *bool  `toml:"lowercase"`
	Duplicate           *bool  `toml:"duplicate"`
	Replace             *bool  `toml:"replace"`
	Report              string `toml:"report"`
	LogLevel            string `toml:"log_level"`
	Debounce            string `toml:"debounce"`
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

// DefaultConfigPath returns ~/.fileorg/config.toml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".fileorg", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("origin", fc.Origin, &cfg.Origin)
	s.setString("destination", fc.Destination, &cfg.Destination)
	s.setString("order", fc.Order, &cfg.Order)
	s.setString("pattern", fc.Pattern, &cfg.Pattern)
	s.setString("digits", fc.Digits, &cfg.Digits)
	s.setString("placement", fc.Placement, &cfg.Placement)
	s.setString("token", fc.Token, &cfg.Token)
	s.setString("remove-chars", fc.RemoveChars, &cfg.RemoveChars)
	s.setString("report", fc.Report, &cfg.Report)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}

	s.setBool("number-before-pattern", fc.NumberBeforePattern, &cfg.NumberBeforePattern)
	s.setBool("numbering", fc.Numbering, &cfg.Numbering)
	s.setBool("remove", fc.Remove, &cfg.Remove)
	s.setBool("lowercase", fc.Lowercase, &cfg.Lowercase)
	s.setBool("duplicate", fc.Duplicate, &cfg.Duplicate)
	s.setBool("replace", fc.Replace, &cfg.Replace)

	return nil
}
