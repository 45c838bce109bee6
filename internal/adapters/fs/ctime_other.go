//go:build !linux && !darwin && !freebsd

package fs

import (
	"os"
	"time"
)

func statusChangeTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
