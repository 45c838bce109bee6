package ordering

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/bft-labs/fileorg/internal/domain"
	"github.com/bft-labs/fileorg/internal/ports"
)

// Resolve returns the names in files ordered according to o. The input
// slice is not modified. timer is only consulted for CreationTime and may
// be nil for the other orderings.
func Resolve(files domain.FileSet, o domain.Ordering, origin string, timer ports.CreationTimer) ([]string, error) {
	if files.Empty() {
		return nil, domain.ErrNoSelection
	}
	names := slices.Clone([]string(files))

	switch o := o.(type) {
	case nil, domain.Alphabetical:
		slices.Sort(names)
		return names, nil

	case domain.ReverseAlphabetical:
		slices.SortFunc(names, func(a, b string) int { return cmp.Compare(b, a) })
		return names, nil

	case domain.CreationTime:
		if timer == nil {
			return nil, fmt.Errorf("creation time ordering: no file system")
		}
		keys := make(map[string]time.Time, len(names))
		for _, name := range names {
			t, err := timer.CreationTime(filepath.Join(origin, name))
			if err != nil {
				return nil, fmt.Errorf("stat %q: %w", name, err)
			}
			keys[name] = t
		}
		sortByKey(names, func(a, b string) int { return keys[a].Compare(keys[b]) })
		return names, nil

	case domain.PatternNumeric:
		keys := make(map[string]int, len(names))
		for _, name := range names {
			keys[name] = NumericKey(name, o.Pattern, o.Before)
		}
		sortByKey(names, func(a, b string) int { return cmp.Compare(keys[a], keys[b]) })
		return names, nil

	default:
		return nil, fmt.Errorf("%w: %T", domain.ErrUnknownOrdering, o)
	}
}

// sortByKey sorts by the key comparison, then by name.
func sortByKey(names []string, byKey func(a, b string) int) {
	slices.SortStableFunc(names, func(a, b string) int {
		if c := byKey(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
}

// NumericKey extracts the sort key of name for the numeric ordering.
// Any name that does not yield an integer gets key 0.
//
//	pattern == ""  -> text before the first '.'
//	before         -> text before the first pattern
//	!before        -> text after the first pattern, up to the first '.'
func NumericKey(name, pattern string, before bool) int {
	dot := strings.IndexByte(name, '.')
	if dot < 0 {
		dot = len(name)
	}

	var field string
	switch {
	case pattern == "":
		field = name[:dot]
	case before:
		i := strings.Index(name, pattern)
		if i < 0 {
			return 0
		}
		field = name[:i]
	default:
		i := strings.Index(name, pattern)
		if i < 0 {
			return 0
		}
		start := i + len(pattern)
		// The first '.' of the whole name bounds the field, even when it
		// sits before the pattern.
		if start > dot {
			return 0
		}
		field = name[start:dot]
	}

	field = strings.TrimSpace(field)
	n, err := strconv.Atoi(field)
	switch {
	case err == nil:
		return n
	case errors.Is(err, strconv.ErrRange):
		// Out of range digits still order past every representable key.
		if strings.HasPrefix(field, "-") {
			return math.MinInt
		}
		return math.MaxInt
	default:
		return 0
	}
}
