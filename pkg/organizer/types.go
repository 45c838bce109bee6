package organizer

import "github.com/bft-labs/fileorg/internal/domain"

// Re-exported domain types so callers need only this package.
type (
	Ordering            = domain.Ordering
	Alphabetical        = domain.Alphabetical
	ReverseAlphabetical = domain.ReverseAlphabetical
	CreationTime        = domain.CreationTime
	PatternNumeric      = domain.PatternNumeric

	Numbering       = domain.Numbering
	Placement       = domain.Placement
	Removal         = domain.Removal
	TransferOptions = domain.TransferOptions

	Transfer = domain.Transfer
	Plan     = domain.Plan
	Outcome  = domain.Outcome
	Result   = domain.Result
	Report   = domain.Report
)

const (
	After  = domain.After
	Before = domain.Before

	OutcomeMoved              = domain.OutcomeMoved
	OutcomeDuplicated         = domain.OutcomeDuplicated
	OutcomeSkippedExists      = domain.OutcomeSkippedExists
	OutcomeSkippedSamePath    = domain.OutcomeSkippedSamePath
	OutcomeSkippedEmptyName   = domain.OutcomeSkippedEmptyName
	OutcomeSkippedInvalidName = domain.OutcomeSkippedInvalidName
)

// ErrNoSelection is returned when a Request selects no files.
var ErrNoSelection = domain.ErrNoSelection

// ParseOrdering maps a name (alpha, reverse, ctime, numeric or 0..3) to an Ordering.
func ParseOrdering(name, pattern string, before bool) (Ordering, error) {
	return domain.ParseOrdering(name, pattern, before)
}

// ParsePlacement maps after/before (or 0/1) to a Placement.
func ParsePlacement(s string) (Placement, error) {
	return domain.ParsePlacement(s)
}
