package pkg

import "errors"

// Gadget configuration errors.
//
// Filesystem failures (create, write, symlink, read-dir, remove) are not
// listed here; they propagate as the *fs.PathError or *os.LinkError returned
// by the os package so the failing path stays visible to the caller.
var (
	// ErrNotBound indicates the gadget owning a function is not bound to a
	// UDC, or the kernel has not yet enumerated the function's device.
	ErrNotBound = errors.New("gadget not bound")

	// ErrMalformedPath indicates a function directory lacks the expected
	// gadget/functions/<function> ancestry.
	ErrMalformedPath = errors.New("malformed function path")

	// ErrInvalidFrame indicates a frame descriptor violates its invariants.
	ErrInvalidFrame = errors.New("invalid frame descriptor")

	// ErrNotRegistered indicates a directory handle is not attached to a
	// configfs directory.
	ErrNotRegistered = errors.New("function not registered")

	// ErrInvalidPath indicates a property path is absolute or escapes the
	// function directory.
	ErrInvalidPath = errors.New("invalid property path")

	// ErrInvalidConfig indicates a configuration file failed to load or
	// validate.
	ErrInvalidConfig = errors.New("invalid configuration")
)
