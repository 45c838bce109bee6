package ports

import "time"

// CreationTimer reads the creation (status-change) time of a file.
type CreationTimer interface {
	CreationTime(path string) (time.Time, error)
}

// FileSystem is the set of file operations the transfer executor needs.
// Paths are full paths; the executor joins directory and name itself.
type FileSystem interface {
	CreationTimer

	// Exists reports whether anything exists at path. A missing path is
	// (false, nil); other stat failures are returned.
	Exists(path string) (bool, error)

	// Remove deletes the file at path.
	Remove(path string) error

	// Copy copies the contents of src to dst. It must not overwrite: when
	// dst already exists it returns an error matching fs.ErrExist.
	Copy(src, dst string) error

	// Rename moves src to dst.
	Rename(src, dst string) error

	// ListFiles returns the names of regular files directly inside dir,
	// sorted ascending. Directories are skipped.
	ListFiles(dir string) ([]string, error)
}
