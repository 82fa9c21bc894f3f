package uvc

import "github.com/ardnew/usbgadget/function"

// Builder accumulates frame descriptors for a UVC function.
//
// A Builder is consumed by Build; using it afterwards panics. The zero value
// is ready to use.
type Builder struct {
	frames   []Frame
	consumed bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddFrame appends a copy of f. Frames are registered in the order added.
func (b *Builder) AddFrame(f Frame) *Builder {
	b.mustNotBeConsumed()
	b.frames = append(b.frames, f.clone())
	return b
}

// AddFrames appends copies of each frame in order.
func (b *Builder) AddFrames(frames ...Frame) *Builder {
	for _, f := range frames {
		b.AddFrame(f)
	}
	return b
}

// Frames returns a copy of the accumulated frames.
func (b *Builder) Frames() []Frame {
	out := make([]Frame, len(b.frames))
	for i, f := range b.frames {
		out[i] = f.clone()
	}
	return out
}

// Build hands the accumulated frames to a new function.
//
// The returned handle must be registered with a gadget; the view shares its
// directory and is used for status and device queries afterwards.
func (b *Builder) Build() (*Uvc, *function.Handle) {
	b.mustNotBeConsumed()
	b.consumed = true

	dir := function.NewDir()
	fn := &uvcFunction{frames: b.frames, dir: dir}
	b.frames = nil

	return &Uvc{dir: dir}, function.NewHandle(fn)
}

func (b *Builder) mustNotBeConsumed() {
	if b.consumed {
		panic("uvc: builder used after Build")
	}
}
