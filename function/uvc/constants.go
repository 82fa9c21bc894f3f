package uvc

// DriverName is the kernel function driver name.
const DriverName = "uvc"

// =============================================================================
// Streaming Interface Parameters
// =============================================================================

// Fixed streaming endpoint parameters written to every function.
const (
	StreamingInterval  = 1    // Isochronous endpoint polling interval
	StreamingMaxPacket = 3072 // Max packet size in bytes
	StreamingMaxBurst  = 1    // SuperSpeed burst size
)

// FrameIntervalUnitsPerSecond is the number of 100 ns frame interval units
// in one second.
const FrameIntervalUnitsPerSecond = 10_000_000

// bytesPerPixel sizes dwMaxVideoFrameBufferSize as a 16-bit raw frame,
// regardless of format.
const bytesPerPixel = 2

// =============================================================================
// Configfs Layout
// =============================================================================

// Directories and property files relative to the function directory.
const (
	streamingDir       = "streaming"
	streamingHeaderDir = "streaming/header/h"
	controlHeaderDir   = "control/header/h"

	propStreamingInterval  = "streaming_interval"
	propStreamingMaxPacket = "streaming_maxpacket"
	propStreamingMaxBurst  = "streaming_maxburst"

	propWidth          = "wWidth"
	propHeight         = "wHeight"
	propMaxBufferSize  = "dwMaxVideoFrameBufferSize"
	propFrameIntervals = "dwFrameInterval"
)

// Speed-specific class descriptor sets that link a header. The control
// interface has no high-speed-only set.
var (
	streamingClassSpeeds = []string{"fs", "hs", "ss"}
	controlClassSpeeds   = []string{"fs", "ss"}
)

// teardownOrder lists the subtrees walked by Teardown. Class links pin the
// header and frame directories, so they go first.
var teardownOrder = []string{
	"control/class",
	"streaming/class",
	"streaming/header",
	"streaming",
	"control/header",
}

// =============================================================================
// Sysfs Layout
// =============================================================================

// Default roots used by DefaultResolver.
const (
	DefaultSysfsRoot = "/sys"
	DefaultDevRoot   = "/dev"
)

const (
	gadgetDriversDir   = "module/libcomposite/drivers"
	gadgetDriverPrefix = "gadget:configfs-gadget."
	boundGadgetPrefix  = "gadget."
	video4linuxDir     = "video4linux"
	videoNodePrefix    = "video"
)
