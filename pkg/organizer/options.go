package organizer

import (
	"github.com/rs/zerolog"

	"github.com/bft-labs/fileorg/internal/ports"
)

// FileSystem is the file system port used by the organizer. Tests can
// supply an in-memory implementation.
type FileSystem = ports.FileSystem

// ReportRepository persists the outcome report of each run.
type ReportRepository = ports.ReportRepository

// Option configures optional behavior of an Organizer.
type Option func(*options)

type options struct {
	logger  zerolog.Logger
	fs      ports.FileSystem
	reports ports.ReportRepository
}

// WithLogger sets the logger. Without it the organizer is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFileSystem replaces the local disk with fs.
func WithFileSystem(fs FileSystem) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// WithReportRepository saves the Report of every Organize call, including
// partial reports of failed runs.
func WithReportRepository(repo ReportRepository) Option {
	return func(o *options) {
		o.reports = repo
	}
}
