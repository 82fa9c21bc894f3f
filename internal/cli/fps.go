package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ardnew/usbgadget/function/uvc"
)

// FrameInterval pairs a frame rate with its interval in 100ns units.
type FrameInterval struct {
	Fps      uint32 `json:"fps"`
	Interval uint32 `json:"interval"`
}

// FpsResult lists converted frame rates.
type FpsResult []FrameInterval

func (r FpsResult) String() string {
	lines := make([]string, len(r))
	for i, fi := range r {
		lines[i] = fmt.Sprintf("%d\t%d", fi.Fps, fi.Interval)
	}
	return strings.Join(lines, "\n")
}

// NewFpsCommand creates the fps command.
func NewFpsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fps <rate>...",
		Short: "Convert frame rates to UVC frame intervals",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := make(FpsResult, 0, len(args))
			for _, arg := range args {
				fps, err := strconv.ParseUint(arg, 10, 32)
				if err != nil || fps == 0 {
					return NewExitError(ExitCommandError, fmt.Sprintf("invalid frame rate %q", arg))
				}
				result = append(result, FrameInterval{
					Fps:      uint32(fps),
					Interval: uvc.Fps(uint32(fps)),
				})
			}
			return newFormatter(rootOpts, cmd).Success(result)
		},
	}

	return cmd
}
