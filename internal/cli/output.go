package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ardnew/usbgadget/pkg"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Filesystem or configfs failure
	ExitCommandError = 2 // Invalid arguments or configuration
	ExitNotBound     = 3 // Gadget not bound to a UDC
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps err with a message and an exit code derived from it.
func WrapExitError(message string, err error) *ExitError {
	return &ExitError{Code: exitCodeFor(err), Message: message, Err: err}
}

// exitCodeFor maps domain errors to exit codes.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, pkg.ErrNotBound):
		return ExitNotBound
	case errors.Is(err, pkg.ErrInvalidConfig),
		errors.Is(err, pkg.ErrInvalidFrame),
		errors.Is(err, pkg.ErrMalformedPath),
		errors.Is(err, pkg.ErrInvalidPath):
		return ExitCommandError
	default:
		return ExitFailure
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the JSON envelope for command output.
type CLIResponse struct {
	Status string `json:"status"`         // "ok"
	Data   any    `json:"data,omitempty"` // success payload
}

// Success writes data as a JSON envelope, or with fmt.Fprintln in text
// mode. Text output relies on data implementing fmt.Stringer where the
// default formatting is not readable.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	_, err := fmt.Fprintln(f.Writer, data)
	return err
}
