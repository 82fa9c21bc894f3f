package function

// Function is the capability every gadget function type provides to the
// framework.
type Function interface {
	// Driver returns the kernel function driver name, the prefix of the
	// function's configfs directory (e.g. "uvc" in "uvc.usb0").
	Driver() string

	// Dir returns the function's scoped directory handle.
	Dir() *Dir

	// Register populates the attached configfs directory.
	Register() error
}

// Remover is implemented by functions that must undo kernel-visible state
// (such as symlinks) before their directory can be removed.
type Remover interface {
	Remove() error
}
