// Package naming synthesizes destination filenames.
//
// A destination name is built in two steps: Synthesize optionally replaces
// the name with a zero-padded sequence number (combined with a custom
// token), then Transform strips configured characters and lowercases.
package naming

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bft-labs/fileorg/internal/domain"
)

// ParseDigitWidth parses a configured digit width. Anything that is not a
// positive integer yields domain.DefaultDigitWidth.
func ParseDigitWidth(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return domain.DefaultDigitWidth
	}
	return n
}

// Extension returns the suffix of name starting at its last '.', or ""
// when name has no '.'.
func Extension(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i:]
	}
	return ""
}

// Synthesize returns the base destination name for the file at position
// index of the resolved order.
func Synthesize(name string, index int, n domain.Numbering) string {
	if !n.Enabled {
		return name
	}

	digits := fmt.Sprintf("%0*d", n.Width(), index)
	ext := Extension(name)

	switch {
	case n.Token == "":
		return digits + ext
	case n.Placement == domain.Before:
		return digits + n.Token + ext
	default:
		return n.Token + digits + ext
	}
}

// Transform applies character removal and lowercasing to a synthesized
// name. Every character listed in r.Characters is removed, then the
// result is lowercased.
func Transform(name string, r domain.Removal, lowercase bool) string {
	if r.Enabled {
		for _, c := range r.Characters {
			name = strings.ReplaceAll(name, string(c), "")
		}
	}
	if lowercase {
		name = strings.ToLower(name)
	}
	return name
}

// DestinationName combines Synthesize and Transform.
func DestinationName(name string, index int, n domain.Numbering, r domain.Removal, lowercase bool) string {
	return Transform(Synthesize(name, index, n), r, lowercase)
}
