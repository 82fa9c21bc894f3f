// Package uvc implements the USB Video Class (UVC) gadget function.
//
// The Linux kernel configuration option CONFIG_USB_CONFIGFS_F_UVC must be
// enabled.
//
// # Architecture
//
// A UVC function is described to the kernel as a configfs tree beneath the
// function directory:
//
//   - streaming/<format>/<name>/<height>p holds one frame descriptor
//     (wWidth, wHeight, dwMaxVideoFrameBufferSize, dwFrameInterval)
//   - streaming/header/h links every format-level frame container
//   - streaming/class/{fs,hs,ss}/h link the streaming header per USB speed
//   - control/class/{fs,ss}/h link the control header
//
// Registration writes every directory and property first and creates all
// symlinks last, in a fixed order, because configfs refuses a link whose
// target does not exist yet. [Teardown] removes the links in the reverse
// dependency order before the directories they pin.
//
// # Usage
//
//	b := uvc.NewBuilder().AddFrame(uvc.Frame{
//	    Format:         uvc.FormatMJPEG,
//	    Name:           "mjpeg",
//	    Width:          1920,
//	    Height:         1080,
//	    FrameIntervals: []uint32{uvc.Fps(30), uvc.Fps(15)},
//	})
//	view, handle := b.Build()
//
//	// Register the handle with a gadget, bind the gadget to a UDC, then:
//	dev, err := view.Device() // e.g. "/dev/video0"
//
// # Limitations
//
// The device resolver uses the first bound gadget instance and the first
// video4linux node it finds. A gadget hosting more than one UVC function is
// not disambiguated.
package uvc
