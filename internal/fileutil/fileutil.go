// Package fileutil provides small filesystem helpers shared by discovery
// and preflight.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// EnsureDir creates dir and any missing parents with default permissions
// (0o755). Existing directories are left untouched.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// DirSize returns the total byte size of regular files under dir,
// descending into subdirectories. Symlinks and other non-regular entries
// are skipped, never followed.
func DirSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("size %s: %w", dir, err)
	}
	return total, nil
}
