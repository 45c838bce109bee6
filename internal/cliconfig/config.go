package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bft-labs/fileorg/internal/domain"
	"github.com/bft-labs/fileorg/internal/naming"
	"github.com/bft-labs/fileorg/pkg/organizer"
)

// Config holds CLI configuration for fileorg.
type Config struct {
	Origin      string
	Destination string

	Order               string
	Pattern             string
	NumberBeforePattern bool

	Numbering bool
	// Digits is kept as text; malformed widths fall back to 4 at rename time.
	Digits    string
	Placement string
	Token     string

	Remove      bool
	RemoveChars string
	Lowercase   bool

	Duplicate bool
	Replace   bool

	Report   string
	LogLevel string
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Order:     "alpha",
		Digits:    "4",
		Placement: "after",
		LogLevel:  "info",
		Debounce:  500 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Origin == "" {
		return fmt.Errorf("%w: origin is required", domain.ErrInvalidConfig)
	}
	if c.Destination == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrInvalidConfig)
	}
	if _, err := domain.ParseOrdering(c.Order, c.Pattern, c.NumberBeforePattern); err != nil {
		return err
	}
	if _, err := domain.ParsePlacement(c.Placement); err != nil {
		return err
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", domain.ErrInvalidConfig)
	}
	return nil
}

// ValidateWatch checks the configuration for the hot-folder mode. Every
// run renumbers the whole origin from zero, so sources must leave the
// origin: duplicating would copy earlier files again under new numbers.
func (c *Config) ValidateWatch() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Duplicate {
		return fmt.Errorf("%w: watch cannot duplicate files", domain.ErrInvalidConfig)
	}
	if samePath(c.Origin, c.Destination) {
		return fmt.Errorf("%w: watch origin and destination must differ", domain.ErrInvalidConfig)
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// Request converts the configuration into an organizer request for files.
func (c Config) Request(files []string) (organizer.Request, error) {
	ord, err := domain.ParseOrdering(c.Order, c.Pattern, c.NumberBeforePattern)
	if err != nil {
		return organizer.Request{}, err
	}
	placement, err := domain.ParsePlacement(c.Placement)
	if err != nil {
		return organizer.Request{}, err
	}

	return organizer.Request{
		Origin:      c.Origin,
		Destination: c.Destination,
		Files:       files,
		Ordering:    ord,
		Numbering: domain.Numbering{
			Enabled:    c.Numbering,
			DigitWidth: naming.ParseDigitWidth(c.Digits),
			Placement:  placement,
			Token:      c.Token,
		},
		Removal: domain.Removal{
			Enabled:    c.Remove,
			Characters: c.RemoveChars,
		},
		Options: domain.TransferOptions{
			Lowercase:       c.Lowercase,
			Duplicate:       c.Duplicate,
			ReplaceExisting: c.Replace,
		},
	}, nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
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

// setBoolFromString accepts "true"/"1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	v := strings.ToLower(value)
	*dst = v == "true" || v == "1"
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
