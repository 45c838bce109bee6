package domain

import (
	"fmt"
	"strings"
)

// DefaultDigitWidth is used when the configured digit width is not a
// positive integer.
const DefaultDigitWidth = 4

// Placement positions the sequence number relative to the custom token.
type Placement int

const (
	// After places the number after the token: token + digits + ext.
	After Placement = iota
	// Before places the number before the token: digits + token + ext.
	Before
)

func (p Placement) String() string {
	if p == Before {
		return "before"
	}
	return "after"
}

// ParsePlacement accepts "after"/"before" or the numeric ids 0/1.
func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "after", "0":
		return After, nil
	case "before", "1":
		return Before, nil
	default:
		return After, fmt.Errorf("%w: %q", ErrUnknownPlacement, s)
	}
}

// Numbering describes the optional sequence-number rename.
type Numbering struct {
	Enabled bool

	// DigitWidth is the zero-padded width of the index. Values below 1
	// fall back to DefaultDigitWidth.
	DigitWidth int

	Placement Placement

	// Token is the custom text combined with the number. May be empty.
	Token string
}

// Width returns the effective digit width.
func (n Numbering) Width() int {
	if n.DigitWidth < 1 {
		return DefaultDigitWidth
	}
	return n.DigitWidth
}

// Removal lists characters stripped from every synthesized name.
type Removal struct {
	Enabled    bool
	Characters string
}

// TransferOptions controls how each planned transfer is carried out.
type TransferOptions struct {
	Lowercase bool

	// Duplicate copies instead of moving.
	Duplicate bool

	// ReplaceExisting deletes a pre-existing destination file first.
	// When false a transfer onto an existing name is skipped.
	ReplaceExisting bool
}
