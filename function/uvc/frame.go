package uvc

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/ardnew/usbgadget/pkg"
)

// Format is a UVC streaming format, the first path element beneath
// streaming/ in configfs.
type Format string

// Formats understood by the kernel UVC function driver.
const (
	FormatUncompressed Format = "uncompressed"
	FormatMJPEG        Format = "mjpeg"
	FormatFrameBased   Format = "framebased"
)

// Frame describes one supported resolution of a format together with the
// frame intervals offered at that resolution.
//
// Name must be unique among frames of the same Format added to one builder;
// two frames sharing a format and name address the same configfs directory.
type Frame struct {
	Format         Format
	Name           string
	Width          uint32
	Height         uint32
	FrameIntervals []uint32 // 100 ns units, see Fps
}

// Fps converts a frame rate to a frame interval in 100 ns units, truncated
// toward zero. Fps(0) returns 0, which Validate rejects.
func Fps(fps uint32) uint32 {
	if fps == 0 {
		return 0
	}
	return FrameIntervalUnitsPerSecond / fps
}

// Validate checks the frame's invariants.
func (f Frame) Validate() error {
	if err := validElement("format", string(f.Format)); err != nil {
		return err
	}
	if err := validElement("name", f.Name); err != nil {
		return err
	}
	if f.Width == 0 || f.Height == 0 {
		return fmt.Errorf("%w: %s: zero dimension %dx%d", pkg.ErrInvalidFrame, f.Name, f.Width, f.Height)
	}
	if len(f.FrameIntervals) == 0 {
		return fmt.Errorf("%w: %s: no frame intervals", pkg.ErrInvalidFrame, f.Name)
	}
	for i, interval := range f.FrameIntervals {
		if interval == 0 {
			return fmt.Errorf("%w: %s: frame interval %d is zero", pkg.ErrInvalidFrame, f.Name, i)
		}
	}
	return nil
}

// validElement rejects values that cannot be used as one path element.
func validElement(field, s string) error {
	switch {
	case s == "":
		return fmt.Errorf("%w: empty %s", pkg.ErrInvalidFrame, field)
	case s == "." || s == "..", strings.ContainsAny(s, "/\x00"):
		return fmt.Errorf("%w: %s %q is not a path element", pkg.ErrInvalidFrame, field, s)
	}
	return nil
}

// Dir returns the format-level frame container, streaming/<format>/<name>.
// This is the directory the streaming header links to.
func (f Frame) Dir() string {
	return path.Join(streamingDir, string(f.Format), f.Name)
}

// ResolutionDir returns the directory holding the frame's properties,
// streaming/<format>/<name>/<height>p.
func (f Frame) ResolutionDir() string {
	return path.Join(f.Dir(), strconv.FormatUint(uint64(f.Height), 10)+"p")
}

// MaxVideoFrameBufferSize returns the buffer size advertised for the frame.
func (f Frame) MaxVideoFrameBufferSize() uint64 {
	return uint64(f.Width) * uint64(f.Height) * bytesPerPixel
}

// clone returns a copy of f that shares no memory with it.
func (f Frame) clone() Frame {
	f.FrameIntervals = append([]uint32(nil), f.FrameIntervals...)
	return f
}
