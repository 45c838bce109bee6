package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/bft-labs/fileorg/internal/ports"
)

// OSFileSystem implements ports.FileSystem on the local disk.
type OSFileSystem struct{}

// NewOSFileSystem returns the local disk adapter.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Exists uses Lstat so a dangling symlink at the destination still counts
// as occupied.
func (OSFileSystem) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (OSFileSystem) Remove(path string) error {
	return os.Remove(path)
}

func (OSFileSystem) Rename(src, dst string) error {
	return os.Rename(src, dst)
}

// Copy copies file contents only, like a plain copyfile: permissions and
// timestamps of src are not carried over. A partially written dst is
// removed on failure.
func (OSFileSystem) Copy(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o666)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(dst)
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// CreationTime returns the status-change time where the platform exposes
// it, and the modification time elsewhere.
func (OSFileSystem) CreationTime(path string) (time.Time, error) {
	return statusChangeTime(path)
}

// ListFiles returns regular files in dir, sorted. Subdirectories are skipped.
func (OSFileSystem) ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		// Follow symlinks so a link to a regular file is listed.
		info, err := os.Stat(filepath.Join(dir, e.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)
	return names, nil
}

// Ensure OSFileSystem implements ports.FileSystem.
var _ ports.FileSystem = (*OSFileSystem)(nil)
