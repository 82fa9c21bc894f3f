package cli

import (
	"github.com/spf13/cobra"

	"github.com/ardnew/usbgadget/function"
	"github.com/ardnew/usbgadget/function/uvc"
)

// TeardownResult describes a torn-down function.
type TeardownResult struct {
	FunctionDir string `json:"function_dir"`
	Removed     bool   `json:"removed"`
}

func (r TeardownResult) String() string {
	if r.Removed {
		return "removed " + r.FunctionDir
	}
	return "tore down " + r.FunctionDir
}

// NewTeardownCommand creates the teardown command.
func NewTeardownCommand(rootOpts *RootOptions) *cobra.Command {
	var remove bool

	cmd := &cobra.Command{
		Use:   "teardown <function-dir>",
		Short: "Unlink and remove a UVC function's configfs tree",
		Long: `Remove every symlink and frame group beneath a UVC function directory.

With --remove the function directory itself is removed afterwards. The
gadget must be unbound from its UDC first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if remove {
				_, handle := uvc.NewBuilder().Build()
				handle.Function().Dir().Attach(dir)
				if err := function.Remove(handle); err != nil {
					return WrapExitError("remove "+dir, err)
				}
			} else if err := uvc.Teardown(dir); err != nil {
				return WrapExitError("teardown "+dir, err)
			}

			return newFormatter(rootOpts, cmd).Success(TeardownResult{
				FunctionDir: dir,
				Removed:     remove,
			})
		},
	}

	cmd.Flags().BoolVar(&remove, "remove", false, "also remove the function directory")

	return cmd
}
