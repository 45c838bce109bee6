package fs

import (
	"context"
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/bft-labs/fileorg/internal/domain"
	"github.com/bft-labs/fileorg/internal/ports"
)

// ReportFileRepository implements ports.ReportRepository using a JSON file.
type ReportFileRepository struct {
	path string
}

// NewReportFileRepository creates a repository writing to path.
func NewReportFileRepository(path string) *ReportFileRepository {
	return &ReportFileRepository{path: path}
}

// Load reads the report at the configured path.
// Returns an empty report and nil error if the file does not exist.
func (r *ReportFileRepository) Load(ctx context.Context) (domain.Report, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.Report{}, nil
		}
		return domain.Report{}, err
	}

	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return domain.Report{}, err
	}
	return report, nil
}

// Save writes the report to a temp file and renames it into place.
func (r *ReportFileRepository) Save(ctx context.Context, report domain.Report) error {
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, r.path)
}

// Path returns the report file path.
func (r *ReportFileRepository) Path() string {
	return r.path
}

var _ ports.ReportRepository = (*ReportFileRepository)(nil)
