//go:build !unix

package fileutil

import "os"

// Permission bits are not meaningful here, so existence is the only check.
func accessReadable(path string) error {
	_, err := os.Stat(path)
	return err
}

func accessWritableDir(string) error {
	return nil
}
