package function

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ardnew/usbgadget/pkg"
)

// Dir is a handle to a function's configfs directory. All paths passed to
// its methods are relative to the attached directory.
//
// A Dir is created unattached; the framework attaches it when the function
// is registered with a gadget. The zero value is an unattached handle.
type Dir struct {
	mutex sync.RWMutex
	path  string
}

// NewDir returns an unattached directory handle.
func NewDir() *Dir {
	return &Dir{}
}

// Attach binds the handle to an absolute directory path.
func (d *Dir) Attach(path string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.path = filepath.Clean(path)
}

// Detach clears the handle's directory.
func (d *Dir) Detach() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.path = ""
}

// Path returns the attached directory.
func (d *Dir) Path() (string, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()
	if d.path == "" {
		return "", pkg.ErrNotRegistered
	}
	return d.path, nil
}

// PropertyPath resolves rel against the attached directory. rel must be
// relative and must not climb out of the directory.
func (d *Dir) PropertyPath(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %q is absolute", pkg.ErrInvalidPath, rel)
	}
	clean := filepath.Clean(rel)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q escapes function directory", pkg.ErrInvalidPath, rel)
	}
	root, err := d.Path()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, clean), nil
}

// CreateDir creates a single directory. Its parent must already exist.
func (d *Dir) CreateDir(rel string) error {
	path, err := d.PropertyPath(rel)
	if err != nil {
		return err
	}
	pkg.LogDebug(pkg.ComponentConfigfs, "create directory", "path", path)
	return os.Mkdir(path, 0o755)
}

// CreateDirAll creates a directory and any missing parents.
func (d *Dir) CreateDirAll(rel string) error {
	path, err := d.PropertyPath(rel)
	if err != nil {
		return err
	}
	pkg.LogDebug(pkg.ComponentConfigfs, "create directory tree", "path", path)
	return os.MkdirAll(path, 0o755)
}

// Write stores data in the property file rel. Missing parent directories
// are created first; in configfs this instantiates the intermediate groups
// whose attribute files the kernel then provides.
func (d *Dir) Write(rel string, data []byte) error {
	path, err := d.PropertyPath(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	pkg.LogDebug(pkg.ComponentConfigfs, "write property", "path", path, "value", string(data))
	return os.WriteFile(path, data, 0o644)
}

// Read returns the contents of the property file rel.
func (d *Dir) Read(rel string) ([]byte, error) {
	path, err := d.PropertyPath(rel)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// Symlink creates link pointing at target, both relative to the directory.
// The link stores the absolute target path.
func (d *Dir) Symlink(target, link string) error {
	targetPath, err := d.PropertyPath(target)
	if err != nil {
		return err
	}
	linkPath, err := d.PropertyPath(link)
	if err != nil {
		return err
	}
	pkg.LogDebug(pkg.ComponentConfigfs, "create symlink", "target", targetPath, "link", linkPath)
	return os.Symlink(targetPath, linkPath)
}

// Status reports whether the attached directory exists.
func (d *Dir) Status() Status {
	path, err := d.Path()
	if err != nil {
		return StatusUnregistered
	}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return StatusRemoved
	case err != nil:
		return StatusUnknown
	case !info.IsDir():
		return StatusUnknown
	}
	if _, err := os.ReadDir(path); err != nil {
		return StatusUnknown
	}
	return StatusRegistered
}
