package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ardnew/usbgadget/internal/config"
)

// FramePlan is the configfs location and contents planned for one frame.
type FramePlan struct {
	Dir            string   `json:"dir"`
	Width          uint32   `json:"width"`
	Height         uint32   `json:"height"`
	FrameIntervals []uint32 `json:"frame_intervals"`
	MaxBufferSize  uint64   `json:"max_buffer_size"`
}

// ValidateResult lists the frames a configuration would register.
type ValidateResult struct {
	Frames []FramePlan `json:"frames"`
}

func (r ValidateResult) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d frame(s)", len(r.Frames))
	for _, f := range r.Frames {
		fmt.Fprintf(&sb, "\n%s\t%dx%d\t%v", f.Dir, f.Width, f.Height, f.FrameIntervals)
	}
	return sb.String()
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config>",
		Short: "Validate a frame configuration without touching configfs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return WrapExitError("load configuration", err)
			}
			frames, err := cfg.UVCFrames()
			if err != nil {
				return WrapExitError("load configuration", err)
			}

			result := ValidateResult{Frames: make([]FramePlan, 0, len(frames))}
			for _, f := range frames {
				result.Frames = append(result.Frames, FramePlan{
					Dir:            f.ResolutionDir(),
					Width:          f.Width,
					Height:         f.Height,
					FrameIntervals: f.FrameIntervals,
					MaxBufferSize:  f.MaxVideoFrameBufferSize(),
				})
			}
			return newFormatter(rootOpts, cmd).Success(result)
		},
	}

	return cmd
}
