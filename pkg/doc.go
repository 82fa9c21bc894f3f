// Package pkg provides shared utilities for the usbgadget packages.
//
// This package contains common functionality used by the configfs function
// builders, the sysfs device resolver and the uvc-gadget command:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for gadget configuration failures
//   - Component identifiers for log filtering
//
// # Logging
//
// The logging subsystem wraps [log/slog] with a component attribute:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogDebug(pkg.ComponentConfigfs, "write property", "path", path)
//
// # Errors
//
// Domain errors are sentinel values wrapped with context:
//
//	if errors.Is(err, pkg.ErrNotBound) {
//	    // Gadget not attached to a UDC yet; retry later
//	}
package pkg
