// Package sysfs provides point-in-time listing and attribute helpers for
// kernel pseudo-filesystems (sysfs and configfs).
//
// Nothing here polls or retries; every call reflects the tree at the moment
// it is read.
package sysfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoEntry indicates that no directory entry matched a lookup.
var ErrNoEntry = errors.New("no matching entry")

// =============================================================================
// Entry Lookup
// =============================================================================

// FirstWithPrefix returns the path of the first entry in dir, in lexical
// order, whose name begins with prefix. Entries of any type match.
func FirstWithPrefix(dir, prefix string) (string, error) {
	return first(dir, prefix, false)
}

// FirstDirWithPrefix is like FirstWithPrefix but only matches entries that
// resolve to a directory. Symlinks are followed, as sysfs publishes most
// device nodes as links.
func FirstDirWithPrefix(dir, prefix string) (string, error) {
	return first(dir, prefix, true)
}

func first(dir, prefix string, wantDir bool) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		path := filepath.Join(dir, name)
		if wantDir && !IsDir(path) {
			continue
		}
		return path, nil
	}

	return "", fmt.Errorf("%w: %s/%s*", ErrNoEntry, dir, prefix)
}

// IsDir reports whether path resolves to a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// =============================================================================
// Attribute Helpers
// =============================================================================

// ReadString reads an attribute file and trims surrounding whitespace.
func ReadString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
