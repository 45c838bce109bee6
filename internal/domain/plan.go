package domain

// Transfer is one planned (source, destination) name pair.
type Transfer struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// Plan is the ordered list of transfers for one invocation. Index i of the
// plan is the index used for numbering.
type Plan struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Transfers   []Transfer `json:"transfers"`
}

// Outcome is what happened to a single planned transfer.
type Outcome string

const (
	OutcomeMoved      Outcome = "moved"
	OutcomeDuplicated Outcome = "duplicated"

	// OutcomeSkippedExists means the destination already existed and
	// replacing was not requested. The source is untouched.
	OutcomeSkippedExists Outcome = "skipped-exists"

	// OutcomeSkippedSamePath means source and destination resolve to the
	// same file, so there is nothing to do.
	OutcomeSkippedSamePath Outcome = "skipped-same-path"

	// OutcomeSkippedEmptyName means the synthesized name was empty after
	// character removal.
	OutcomeSkippedEmptyName Outcome = "skipped-empty-name"

	// OutcomeSkippedInvalidName means the source or destination name is
	// not a bare filename: it contains a path separator or is "." or "..".
	OutcomeSkippedInvalidName Outcome = "skipped-invalid-name"
)

// Skipped reports whether the outcome left the source in place without
// writing the destination.
func (o Outcome) Skipped() bool {
	switch o {
	case OutcomeSkippedExists, OutcomeSkippedSamePath, OutcomeSkippedEmptyName, OutcomeSkippedInvalidName:
		return true
	}
	return false
}

// Result records the outcome of one transfer.
type Result struct {
	Transfer
	Outcome Outcome `json:"outcome"`

	// Replaced is set when a pre-existing destination file was deleted.
	Replaced bool `json:"replaced,omitempty"`
}

// Report collects the results of executing a Plan, in plan order. When
// execution stops on an error, Results holds only the completed transfers.
type Report struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Duplicate   bool     `json:"duplicate"`
	Results     []Result `json:"results"`
}

// Count returns how many results have the given outcome.
func (r Report) Count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Skipped returns the number of results that were skipped for any reason.
func (r Report) Skipped() int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome.Skipped() {
			n++
		}
	}
	return n
}
