// Package transfer executes a transfer plan against the file system.
//
// Transfers run strictly in plan order, one at a time. The batch is not
// transactional: the first file system error stops the run and files
// already moved or copied stay where they are.
package transfer

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/fileorg/internal/domain"
	"github.com/bft-labs/fileorg/internal/ports"
)

// Executor performs the moves or copies of a plan.
type Executor struct {
	fs     ports.FileSystem
	logger zerolog.Logger
}

// NewExecutor creates an Executor over fs.
func NewExecutor(fs ports.FileSystem, logger zerolog.Logger) *Executor {
	return &Executor{fs: fs, logger: logger}
}

// Execute carries out every transfer of plan. It returns a Report with one
// Result per processed transfer; on error the report covers the transfers
// completed before the failure.
//
// A destination that already exists is skipped without error unless
// opts.ReplaceExisting is set, in which case it is deleted first.
func (e *Executor) Execute(plan domain.Plan, opts domain.TransferOptions) (domain.Report, error) {
	report := domain.Report{
		Origin:      plan.Origin,
		Destination: plan.Destination,
		Duplicate:   opts.Duplicate,
		Results:     make([]domain.Result, 0, len(plan.Transfers)),
	}

	for _, t := range plan.Transfers {
		res, err := e.one(plan, t, opts)
		if err != nil {
			return report, err
		}
		report.Results = append(report.Results, res)
	}
	return report, nil
}

func (e *Executor) one(plan domain.Plan, t domain.Transfer, opts domain.TransferOptions) (domain.Result, error) {
	res := domain.Result{Transfer: t}

	if t.Destination == "" {
		res.Outcome = domain.OutcomeSkippedEmptyName
		return res, nil
	}
	if !bareName(t.Source) || !bareName(t.Destination) {
		res.Outcome = domain.OutcomeSkippedInvalidName
		return res, nil
	}

	src := filepath.Join(plan.Origin, t.Source)
	dst := filepath.Join(plan.Destination, t.Destination)
	if src == dst {
		res.Outcome = domain.OutcomeSkippedSamePath
		return res, nil
	}

	exists, err := e.fs.Exists(dst)
	if err != nil {
		return res, fmt.Errorf("stat %q: %w", dst, err)
	}
	if exists && opts.ReplaceExisting {
		if err := e.fs.Remove(dst); err != nil {
			return res, fmt.Errorf("replace %q: %w", dst, err)
		}
		res.Replaced = true
		exists = false
	}
	if exists {
		res.Outcome = domain.OutcomeSkippedExists
		return res, nil
	}

	if opts.Duplicate {
		err := e.fs.Copy(src, dst)
		if errors.Is(err, iofs.ErrExist) {
			// Appeared between the check and the copy.
			res.Outcome = domain.OutcomeSkippedExists
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("duplicate %q to %q: %w", t.Source, dst, err)
		}
		res.Outcome = domain.OutcomeDuplicated
	} else {
		if err := e.fs.Rename(src, dst); err != nil {
			return res, fmt.Errorf("move %q to %q: %w", t.Source, dst, err)
		}
		res.Outcome = domain.OutcomeMoved
	}

	e.logger.Debug().
		Str("source", t.Source).
		Str("destination", t.Destination).
		Str("outcome", string(res.Outcome)).
		Bool("replaced", res.Replaced).
		Msg("transferred")
	return res, nil
}

// bareName reports whether name stays inside the directory it is joined to.
func bareName(name string) bool {
	if name == "." || name == ".." || strings.ContainsRune(name, '/') {
		return false
	}
	return filepath.Base(name) == name
}
