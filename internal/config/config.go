// Package config loads the frame-set configuration used by uvc-gadget.
//
// A configuration is YAML:
//
//	frames:
//	  - format: mjpeg
//	    name: mjpeg
//	    width: 1920
//	    height: 1080
//	    fps: [30, 15]
//	    intervals: [666666]
//
// Documents are checked against an embedded CUE schema, names are NFC
// normalized, and each frame is converted to a [uvc.Frame].
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/ardnew/usbgadget/function/uvc"
	"github.com/ardnew/usbgadget/pkg"
)

//go:embed schema.cue
var schemaSource string

// KnownFormats lists the formats the schema accepts.
var KnownFormats = []uvc.Format{
	uvc.FormatUncompressed,
	uvc.FormatMJPEG,
	uvc.FormatFrameBased,
}

// Config is a frame-set configuration.
type Config struct {
	Frames []Frame `yaml:"frames" json:"frames"`
}

// Frame is one frame descriptor as written in a configuration file.
type Frame struct {
	Format    string   `yaml:"format" json:"format"`
	Name      string   `yaml:"name" json:"name"`
	Width     uint32   `yaml:"width" json:"width"`
	Height    uint32   `yaml:"height" json:"height"`
	Fps       []uint32 `yaml:"fps,omitempty" json:"fps,omitempty"`
	Intervals []uint32 `yaml:"intervals,omitempty" json:"intervals,omitempty"`
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML configuration.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", pkg.ErrInvalidConfig, err)
	}

	if cfg.Frames == nil {
		cfg.Frames = []Frame{}
	}
	for i := range cfg.Frames {
		cfg.Frames[i].Format = norm.NFC.String(cfg.Frames[i].Format)
		cfg.Frames[i].Name = norm.NFC.String(cfg.Frames[i].Name)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	pkg.LogDebug(pkg.ComponentConfig, "configuration parsed", "frames", len(cfg.Frames))
	return &cfg, nil
}

// validate checks cfg against the embedded schema.
func validate(cfg *Config) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	v := def.Unify(ctx.Encode(cfg))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", pkg.ErrInvalidConfig, err)
	}
	return nil
}

// UVCFrames converts the configuration to frame descriptors in file order.
// Rates in fps come first, then raw intervals.
//
// Frame names must be unique across formats: every frame is linked into the
// streaming header under its name alone.
func (c *Config) UVCFrames() ([]uvc.Frame, error) {
	seen := make(map[string]int, len(c.Frames))
	frames := make([]uvc.Frame, 0, len(c.Frames))

	for i, fc := range c.Frames {
		if j, dup := seen[fc.Name]; dup {
			return nil, fmt.Errorf("%w: frames %d and %d share header link %s",
				pkg.ErrInvalidConfig, j, i, "streaming/header/h/"+fc.Name)
		}
		seen[fc.Name] = i

		f := uvc.Frame{
			Format: uvc.Format(fc.Format),
			Name:   fc.Name,
			Width:  fc.Width,
			Height: fc.Height,
		}
		for _, fps := range fc.Fps {
			f.FrameIntervals = append(f.FrameIntervals, uvc.Fps(fps))
		}
		f.FrameIntervals = append(f.FrameIntervals, fc.Intervals...)

		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("%w: frame %d: %v", pkg.ErrInvalidConfig, i, err)
		}
		frames = append(frames, f)
	}

	return frames, nil
}

// Builder returns a UVC builder holding the configuration's frames.
func (c *Config) Builder() (*uvc.Builder, error) {
	frames, err := c.UVCFrames()
	if err != nil {
		return nil, err
	}
	return uvc.NewBuilder().AddFrames(frames...), nil
}
