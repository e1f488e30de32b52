package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gofrs/flock"
)

// ErrLocked reports that another process holds the lock on an output file.
var ErrLocked = errors.New("file is locked by another process")

// DetectOpenable partitions paths into those that can be opened for reading
// and those that cannot, preserving relative order within each list. A line
// is written to out for every unreadable path. Individual failures are never
// returned as errors.
func DetectOpenable(paths []string, out io.Writer) (openable, bad []string) {
	for _, path := range paths {
		if err := CheckReadable(path); err != nil {
			if out != nil {
				fmt.Fprintf(out, "%s can't be opened, check the path or the permissions of the file\n", path)
			}
			bad = append(bad, path)
			continue
		}
		openable = append(openable, path)
	}
	return openable, bad
}

// CheckReadable reports whether path names a regular file the current user
// may read, without opening it.
func CheckReadable(path string) error {
	if err := accessReadable(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &os.PathError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}
	return nil
}

// CheckWritableDir reports whether path names a directory the current user
// may create files in.
func CheckWritableDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "open", Path: path, Err: errors.New("is not a directory")}
	}
	return accessWritableDir(path)
}

// LockPath returns the advisory lock file guarding writes to path.
func LockPath(path string) string {
	return path + ".lock"
}

// WriteFileLocked replaces the contents of path with data in a single write
// while holding an advisory lock on LockPath(path). The lock file is left in
// place after the write. Existing content is overwritten without
// confirmation.
func WriteFileLocked(path string, data []byte, perm os.FileMode) error {
	lockPath := LockPath(path)
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock %s: %w", lockPath, err)
	}
	if !locked {
		return fmt.Errorf("write %s: %w", path, ErrLocked)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
