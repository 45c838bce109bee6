package domain

import (
	"fmt"
	"strings"
)

// FileSet is the caller's selection of filenames. Every entry is a bare name
// that lives directly inside the origin directory.
type FileSet []string

// Empty reports whether nothing was selected.
func (s FileSet) Empty() bool { return len(s) == 0 }

// Ordering selects how a FileSet is pre-ordered before renaming.
// The set of implementations is closed: Alphabetical, ReverseAlphabetical,
// CreationTime and PatternNumeric.
type Ordering interface {
	// Name returns the canonical configuration name of the ordering.
	Name() string

	isOrdering()
}

// Alphabetical sorts filenames ascending by byte-wise string comparison.
type Alphabetical struct{}

// ReverseAlphabetical sorts filenames descending by byte-wise string comparison.
type ReverseAlphabetical struct{}

// CreationTime sorts filenames ascending by their status-change time.
type CreationTime struct{}

// PatternNumeric sorts filenames by an integer extracted from each name.
//
// With an empty Pattern the integer is the text before the first '.'.
// With Before set it is the text before the first occurrence of Pattern,
// otherwise the text between Pattern and the first '.'.
type PatternNumeric struct {
	Before  bool
	Pattern string
}

func (Alphabetical) Name() string        { return "alpha" }
func (ReverseAlphabetical) Name() string { return "reverse" }
func (CreationTime) Name() string        { return "ctime" }
func (PatternNumeric) Name() string      { return "numeric" }

func (Alphabetical) isOrdering()        {}
func (ReverseAlphabetical) isOrdering() {}
func (CreationTime) isOrdering()        {}
func (PatternNumeric) isOrdering()      {}

// ParseOrdering maps a configuration name to an Ordering. The numeric ids
// 0..3 are accepted as aliases for alpha, reverse, ctime and numeric.
// pattern and before only matter for the numeric ordering.
func ParseOrdering(name, pattern string, before bool) (Ordering, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "alpha", "alphabetical", "0":
		return Alphabetical{}, nil
	case "reverse", "reverse-alpha", "1":
		return ReverseAlphabetical{}, nil
	case "ctime", "creation", "creation-time", "2":
		return CreationTime{}, nil
	case "numeric", "pattern", "3":
		return PatternNumeric{Before: before, Pattern: pattern}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrdering, name)
	}
}
