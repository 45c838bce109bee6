package organizer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bft-labs/fileorg/internal/adapters/fs"
	"github.com/bft-labs/fileorg/internal/domain"
	"github.com/bft-labs/fileorg/internal/naming"
	"github.com/bft-labs/fileorg/internal/ordering"
	"github.com/bft-labs/fileorg/internal/transfer"
)

// Request is one organize invocation.
type Request struct {
	// Origin is the directory the selected files live in.
	Origin string

	// Destination is the directory files are moved or copied into.
	Destination string

	// Files are bare names inside Origin. Must not be empty.
	Files []string

	// Ordering is the pre-order; nil means Alphabetical.
	Ordering  Ordering
	Numbering Numbering
	Removal   Removal
	Options   TransferOptions
}

// Organizer plans and executes file transfers.
type Organizer struct {
	opts     options
	executor *transfer.Executor
}

// New creates an Organizer. By default it works on the local disk and
// logs nothing.
func New(opts ...Option) *Organizer {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fs == nil {
		o.fs = fs.NewOSFileSystem()
	}
	return &Organizer{
		opts:     o,
		executor: transfer.NewExecutor(o.fs, o.logger),
	}
}

// Plan resolves the order and destination names for req without touching
// the destination. CreationTime ordering stats the origin files.
func (o *Organizer) Plan(req Request) (Plan, error) {
	names, err := ordering.Resolve(req.Files, req.Ordering, req.Origin, o.opts.fs)
	if err != nil {
		return Plan{}, err
	}

	plan := Plan{
		Origin:      req.Origin,
		Destination: req.Destination,
		Transfers:   make([]Transfer, len(names)),
	}
	for i, name := range names {
		plan.Transfers[i] = Transfer{
			Source:      name,
			Destination: naming.DestinationName(name, i, req.Numbering, req.Removal, req.Options.Lowercase),
		}
	}
	return plan, nil
}

// Organize plans req and executes the plan. An empty selection returns
// ErrNoSelection before any file system access.
func (o *Organizer) Organize(req Request) (Report, error) {
	log := o.opts.logger

	plan, err := o.Plan(req)
	if err != nil {
		return Report{}, err
	}

	orderName := domain.Alphabetical{}.Name()
	if req.Ordering != nil {
		orderName = req.Ordering.Name()
	}
	log.Info().
		Str("origin", req.Origin).
		Str("destination", req.Destination).
		Int("files", len(plan.Transfers)).
		Str("order", orderName).
		Bool("duplicate", req.Options.Duplicate).
		Bool("replace", req.Options.ReplaceExisting).
		Msg("organizing files")

	report, execErr := o.executor.Execute(plan, req.Options)

	if o.opts.reports != nil {
		if err := o.opts.reports.Save(context.Background(), report); err != nil {
			log.Warn().Err(err).Msg("failed to save report")
		}
	}

	if execErr != nil {
		log.Error().Err(execErr).Int("completed", len(report.Results)).Msg("transfer aborted")
		return report, execErr
	}

	log.Info().
		Int("moved", report.Count(domain.OutcomeMoved)).
		Int("duplicated", report.Count(domain.OutcomeDuplicated)).
		Int("skipped", report.Skipped()).
		Msg("organize complete")
	return report, nil
}

// ListFiles returns the regular files directly inside dir, sorted.
func (o *Organizer) ListFiles(dir string) ([]string, error) {
	names, err := o.opts.fs.ListFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", dir, err)
	}
	return names, nil
}
