package uvc

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ardnew/usbgadget/pkg"
)

// Teardown undoes the tree written by registration so the function
// directory itself can be removed.
//
// Symlinks are unlinked on sight. Directories are emptied and then removed;
// a directory that cannot be removed (a kernel default group, or one still
// holding attributes) is left in place without error. Subtrees that no
// longer exist are skipped, so Teardown may be run more than once.
func Teardown(dir string) error {
	pkg.LogDebug(pkg.ComponentUVC, "tearing down function", "path", dir)
	for _, sub := range teardownOrder {
		if err := walkAndDelete(filepath.Join(dir, sub)); err != nil {
			return err
		}
	}
	return nil
}

func walkAndDelete(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.Type()&fs.ModeSymlink != 0:
			pkg.LogDebug(pkg.ComponentConfigfs, "remove symlink", "path", path)
			if err := os.Remove(path); err != nil {
				return err
			}
		case entry.IsDir():
			if err := walkAndDelete(path); err != nil {
				return err
			}
			if err := os.Remove(path); err != nil {
				pkg.LogDebug(pkg.ComponentConfigfs, "directory retained", "path", path, "reason", err)
			}
		}
	}
	return nil
}
