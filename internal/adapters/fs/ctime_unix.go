//go:build linux || darwin || freebsd

package fs

import (
	iofs "io/fs"
	"time"

	"golang.org/x/sys/unix"
)

func statusChangeTime(path string) (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, &iofs.PathError{Op: "stat", Path: path, Err: err}
	}
	return time.Unix(st.Ctim.Unix()), nil
}
