package cli

import (
	"github.com/spf13/cobra"

	"github.com/ardnew/usbgadget/function/uvc"
)

// DeviceResult names a function's V4L2 node.
type DeviceResult struct {
	FunctionDir string `json:"function_dir"`
	Device      string `json:"device"`
}

func (r DeviceResult) String() string {
	return r.Device
}

// NewDeviceCommand creates the device command.
func NewDeviceCommand(rootOpts *RootOptions) *cobra.Command {
	var resolver uvc.Resolver

	cmd := &cobra.Command{
		Use:   "device <function-dir>",
		Short: "Print the /dev/videoN node of a bound UVC function",
		Long: `Look up the V4L2 device the kernel created for a UVC function.

The owning gadget must be bound to a UDC. The lookup reads sysfs once and
exits with status 3 if the gadget is not bound yet; retry externally to
wait for enumeration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := resolver.Resolve(args[0])
			if err != nil {
				return WrapExitError("resolve device", err)
			}
			return newFormatter(rootOpts, cmd).Success(DeviceResult{
				FunctionDir: args[0],
				Device:      node,
			})
		},
	}

	cmd.Flags().StringVar(&resolver.SysfsRoot, "sysfs", uvc.DefaultSysfsRoot, "sysfs mount point")
	cmd.Flags().StringVar(&resolver.DevRoot, "dev", uvc.DefaultDevRoot, "device node directory")

	return cmd
}
