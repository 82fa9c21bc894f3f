package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ardnew/usbgadget/function"
	"github.com/ardnew/usbgadget/internal/sysfs"
)

// StatusResult reports a function directory's state.
type StatusResult struct {
	FunctionDir string `json:"function_dir"`
	Status      string `json:"status"`
	UDC         string `json:"udc,omitempty"`
}

func (r StatusResult) String() string {
	if r.UDC == "" {
		return r.Status
	}
	return fmt.Sprintf("%s (udc %s)", r.Status, r.UDC)
}

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <function-dir>",
		Short: "Report whether a function directory is registered",
		Long: `Report the state of an existing function directory and the UDC its
gadget is bound to. A directory that does not exist is an error, since a
path alone cannot tell a removed function from one never created.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Lstat(args[0]); err != nil {
				return WrapExitError("status "+args[0], err)
			}

			dir := function.NewDir()
			dir.Attach(args[0])

			result := StatusResult{
				FunctionDir: args[0],
				Status:      dir.Status().String(),
			}
			// The gadget's UDC attribute names the controller it is bound to.
			udcPath := filepath.Join(filepath.Dir(filepath.Dir(filepath.Clean(args[0]))), "UDC")
			if udc, err := sysfs.ReadString(udcPath); err == nil {
				result.UDC = udc
			}

			return newFormatter(rootOpts, cmd).Success(result)
		},
	}

	return cmd
}
