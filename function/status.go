package function

// Status describes the attachment state of a function directory.
type Status uint8

// Status values.
const (
	StatusUnregistered Status = iota // Handle not attached to a directory
	StatusRegistered                 // Directory present and readable
	StatusRemoved                    // Directory no longer exists
	StatusUnknown                    // Directory state could not be read
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusUnregistered:
		return "unregistered"
	case StatusRegistered:
		return "registered"
	case StatusRemoved:
		return "removed"
	default:
		return "unknown"
	}
}
