// Package function defines the generic USB gadget function capability and
// the scoped configfs directory handle that function implementations write
// through.
//
// A function type (UVC, HID, mass storage, ...) implements [Function]. The
// gadget framework owns the configfs directory that the kernel creates for
// the function instance; it attaches that directory to the function's [Dir]
// and then calls [Function.Register] to populate it. Removal runs the
// function's optional [Remover] before the directory itself is removed.
//
// A [Dir] is shared by pointer between the object registered with the
// framework and any read-side view handed back to the caller, so both
// observe the same attachment state.
//
// # Usage
//
//	h := function.NewHandle(fn)
//	if err := function.Register(h, "/sys/kernel/config/usb_gadget/g1/functions/uvc.usb0"); err != nil {
//	    return err
//	}
//	defer function.Remove(h)
package function
