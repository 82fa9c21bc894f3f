package uvc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ardnew/usbgadget/function"
	"github.com/ardnew/usbgadget/pkg"
)

// Uvc is the caller's view of a built UVC function. It only reads; the tree
// is written by the handle returned alongside it from Build.
type Uvc struct {
	dir *function.Dir
}

// Status returns the function directory's status.
func (u *Uvc) Status() function.Status {
	return u.dir.Status()
}

// Dir returns the function's configfs directory once registered.
func (u *Uvc) Dir() (string, error) {
	return u.dir.Path()
}

// Device returns the V4L2 device node the kernel created for this function,
// using DefaultResolver. The owning gadget must be bound to a UDC.
func (u *Uvc) Device() (string, error) {
	return u.DeviceWith(DefaultResolver)
}

// DeviceWith is like Device but resolves through r.
func (u *Uvc) DeviceWith(r Resolver) (string, error) {
	dir, err := u.dir.Path()
	if err != nil {
		return "", err
	}
	return r.Resolve(dir)
}

// uvcFunction is the object registered with the gadget framework.
type uvcFunction struct {
	frames []Frame
	dir    *function.Dir
}

var (
	_ function.Function = (*uvcFunction)(nil)
	_ function.Remover  = (*uvcFunction)(nil)
)

func (f *uvcFunction) Driver() string {
	return DriverName
}

func (f *uvcFunction) Dir() *function.Dir {
	return f.dir
}

// Register writes the function's configfs tree. Every frame is validated
// before anything is written. Nothing is rolled back if a later step fails.
func (f *uvcFunction) Register() error {
	for i, frame := range f.frames {
		if err := frame.Validate(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	if err := f.dir.CreateDir(streamingHeaderDir); err != nil {
		return err
	}

	for _, prop := range []struct {
		name  string
		value uint64
	}{
		{propStreamingInterval, StreamingInterval},
		{propStreamingMaxPacket, StreamingMaxPacket},
		{propStreamingMaxBurst, StreamingMaxBurst},
	} {
		if err := f.dir.Write(prop.name, decimal(prop.value)); err != nil {
			return err
		}
	}

	for _, frame := range f.frames {
		if err := writeFrame(f.dir, frame); err != nil {
			return err
		}
	}

	if err := f.dir.CreateDir(controlHeaderDir); err != nil {
		return err
	}

	links := planLinks(f.frames)
	for _, l := range links {
		if err := f.dir.Symlink(l.target, l.link); err != nil {
			return err
		}
	}

	pkg.LogInfo(pkg.ComponentUVC, "function registered",
		"frames", len(f.frames),
		"links", len(links))
	return nil
}

// Remove unlinks the function's symlinks and removes its groups.
func (f *uvcFunction) Remove() error {
	dir, err := f.dir.Path()
	if err != nil {
		return err
	}
	return Teardown(dir)
}

// writeFrame writes the resolution directory of one frame.
func writeFrame(dir *function.Dir, frame Frame) error {
	res := frame.ResolutionDir()
	intervals := make([]uint64, len(frame.FrameIntervals))
	for i, v := range frame.FrameIntervals {
		intervals[i] = uint64(v)
	}

	for _, prop := range []struct {
		name  string
		value []byte
	}{
		{propWidth, decimal(uint64(frame.Width))},
		{propHeight, decimal(uint64(frame.Height))},
		{propMaxBufferSize, decimal(frame.MaxVideoFrameBufferSize())},
		{propFrameIntervals, decimal(intervals...)},
	} {
		if err := dir.Write(res+"/"+prop.name, prop.value); err != nil {
			return err
		}
	}
	return nil
}

// decimal renders values as newline-terminated decimal lines.
func decimal(values ...uint64) []byte {
	var sb strings.Builder
	for _, v := range values {
		sb.WriteString(strconv.FormatUint(v, 10))
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}
