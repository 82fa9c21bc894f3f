package uvc

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/ardnew/usbgadget/internal/sysfs"
	"github.com/ardnew/usbgadget/pkg"
)

// Resolver locates the V4L2 device node of a bound UVC function by walking
// the driver-core links the kernel publishes in sysfs. Empty fields fall
// back to DefaultSysfsRoot and DefaultDevRoot.
type Resolver struct {
	SysfsRoot string
	DevRoot   string
}

// DefaultResolver resolves against the live /sys and /dev trees.
var DefaultResolver = Resolver{}

// GadgetName returns the name of the gadget owning a function directory,
// the final element two levels above it
// (<gadget>/functions/<function>).
func GadgetName(functionDir string) (string, error) {
	clean := filepath.Clean(functionDir)
	functions := filepath.Dir(clean)
	gadget := filepath.Dir(functions)
	name := filepath.Base(gadget)

	if functions == clean || gadget == functions ||
		name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %s", pkg.ErrMalformedPath, functionDir)
	}
	return name, nil
}

// DriverPath returns the sysfs directory where the driver core lists bound
// instances of the named gadget.
func (r Resolver) DriverPath(gadget string) string {
	return filepath.Join(r.sysfsRoot(), gadgetDriversDir, gadgetDriverPrefix+gadget)
}

// Resolve returns the /dev node of the first video4linux device under the
// first bound instance of the gadget owning functionDir.
//
// It reads sysfs once and does not wait: ErrNotBound is returned when the
// gadget is not bound or its video device is not enumerated yet.
func (r Resolver) Resolve(functionDir string) (string, error) {
	gadget, err := GadgetName(functionDir)
	if err != nil {
		return "", err
	}

	driverDir := r.DriverPath(gadget)
	instance, err := sysfs.FirstWithPrefix(driverDir, boundGadgetPrefix)
	if err != nil {
		return "", notBound(err, driverDir)
	}

	v4lDir := filepath.Join(instance, video4linuxDir)
	video, err := sysfs.FirstDirWithPrefix(v4lDir, videoNodePrefix)
	if err != nil {
		return "", notBound(err, v4lDir)
	}

	node := filepath.Join(r.devRoot(), filepath.Base(video))
	if name, err := sysfs.ReadString(filepath.Join(video, "name")); err == nil {
		pkg.LogDebug(pkg.ComponentSysfs, "resolved video device",
			"gadget", gadget,
			"node", node,
			"name", name)
	}
	return node, nil
}

// notBound maps missing sysfs entries to ErrNotBound.
func notBound(err error, path string) error {
	if errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, syscall.ENOTDIR) ||
		errors.Is(err, sysfs.ErrNoEntry) {
		return fmt.Errorf("%w: %s", pkg.ErrNotBound, path)
	}
	return err
}

func (r Resolver) sysfsRoot() string {
	if r.SysfsRoot == "" {
		return DefaultSysfsRoot
	}
	return r.SysfsRoot
}

func (r Resolver) devRoot() string {
	if r.DevRoot == "" {
		return DefaultDevRoot
	}
	return r.DevRoot
}
