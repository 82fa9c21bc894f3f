package function

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ardnew/usbgadget/pkg"
)

// Handle is the framework's reference to a built function.
type Handle struct {
	fn Function
}

// NewHandle wraps fn for registration with a gadget.
func NewHandle(fn Function) *Handle {
	return &Handle{fn: fn}
}

// Function returns the wrapped function.
func (h *Handle) Function() Function {
	return h.fn
}

// Driver returns the wrapped function's driver name.
func (h *Handle) Driver() string {
	return h.fn.Driver()
}

// Register attaches the function to path and populates it.
//
// The directory is created if it does not exist; in configfs this is the
// mkdir that instantiates the function and its kernel-provided default
// groups. A failed Register leaves whatever was written on disk; call
// [Remove] to clean up.
func Register(h *Handle, path string) error {
	if err := os.Mkdir(path, 0o755); err != nil && !errors.Is(err, fs.ErrExist) {
		return err
	}
	h.fn.Dir().Attach(path)

	pkg.LogInfo(pkg.ComponentFunction, "registering function",
		"driver", h.fn.Driver(),
		"path", path)

	if err := h.fn.Register(); err != nil {
		return fmt.Errorf("register %s function: %w", h.fn.Driver(), err)
	}
	return nil
}

// Remove undoes Register: the function's Remover runs first, then the
// function directory is removed. The handle stays attached so views sharing
// it report [StatusRemoved].
func Remove(h *Handle) error {
	path, err := h.fn.Dir().Path()
	if err != nil {
		return err
	}

	if r, ok := h.fn.(Remover); ok {
		if err := r.Remove(); err != nil {
			return fmt.Errorf("remove %s function: %w", h.fn.Driver(), err)
		}
	}

	pkg.LogInfo(pkg.ComponentFunction, "removing function",
		"driver", h.fn.Driver(),
		"path", path)

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
