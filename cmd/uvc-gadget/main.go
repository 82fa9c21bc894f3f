// Command uvc-gadget configures a USB Video Class function in a configfs
// USB gadget and reports the V4L2 device the kernel creates for it.
package main

import (
	"fmt"
	"os"

	"github.com/ardnew/usbgadget/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "uvc-gadget:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
