package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ardnew/usbgadget/function"
	"github.com/ardnew/usbgadget/function/uvc"
	"github.com/ardnew/usbgadget/internal/config"
	"github.com/ardnew/usbgadget/pkg"
)

// ApplyResult describes a registered function.
type ApplyResult struct {
	FunctionDir string `json:"function_dir"`
	Frames      int    `json:"frames"`
	Status      string `json:"status"`
}

func (r ApplyResult) String() string {
	return r.FunctionDir
}

type applyOptions struct {
	gadget   string
	instance string
	config   string
}

// NewApplyCommand creates the apply command.
func NewApplyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &applyOptions{}

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create and register a UVC function in a gadget",
		Long: `Create <gadget>/functions/uvc.<instance> and write the UVC configfs tree
for the frames listed in the configuration file.

A partially written function is not rolled back on failure; run teardown
on the printed directory to clean up.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.gadget, "gadget", "g", "", "gadget directory in configfs")
	cmd.Flags().StringVarP(&opts.instance, "instance", "i", "", "function instance name (default: random)")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "frame configuration file (YAML)")
	_ = cmd.MarkFlagRequired("gadget")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runApply(rootOpts *RootOptions, opts *applyOptions, cmd *cobra.Command) error {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return WrapExitError("load configuration", err)
	}
	builder, err := cfg.Builder()
	if err != nil {
		return WrapExitError("load configuration", err)
	}

	instance := opts.instance
	if instance == "" {
		instance = newInstanceName()
	}
	if strings.ContainsRune(instance, '/') {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid instance name %q", instance))
	}

	frames := len(builder.Frames())
	view, handle := builder.Build()
	dir := filepath.Join(opts.gadget, "functions", uvc.DriverName+"."+instance)

	if err := function.Register(handle, dir); err != nil {
		return WrapExitError("apply "+dir, err)
	}

	pkg.LogInfo(pkg.ComponentCLI, "function applied", "path", dir, "frames", frames)

	return newFormatter(rootOpts, cmd).Success(ApplyResult{
		FunctionDir: dir,
		Frames:      frames,
		Status:      view.Status().String(),
	})
}

// newInstanceName returns a short random instance name.
func newInstanceName() string {
	id := uuid.NewString()
	return id[:strings.IndexByte(id, '-')]
}
