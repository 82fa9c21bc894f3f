package uvc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/usbgadget/pkg"
)

// fakeSysfs lays out the driver-core view of a bound gadget named gadget
// with the given video nodes, returning the sysfs root.
func fakeSysfs(t *testing.T, gadget string, videos ...string) string {
	t.Helper()
	root := t.TempDir()
	driver := filepath.Join(root, "module", "libcomposite", "drivers", "gadget:configfs-gadget."+gadget)
	require.NoError(t, os.MkdirAll(driver, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(driver, "uevent"), nil, 0o644))

	device := filepath.Join(root, "devices", "platform", "fe980000.usb", "gadget.0")
	v4l := filepath.Join(device, "video4linux")
	require.NoError(t, os.MkdirAll(v4l, 0o755))
	for _, video := range videos {
		require.NoError(t, os.MkdirAll(filepath.Join(v4l, video), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(v4l, video, "name"), []byte("fe980000.usb\n"), 0o644))
	}
	require.NoError(t, os.Symlink(device, filepath.Join(driver, "gadget.0")))
	return root
}

func TestGadgetName(t *testing.T) {
	tests := []struct {
		dir     string
		want    string
		wantErr bool
	}{
		{"/sys/kernel/config/usb_gadget/g1/functions/uvc.usb0", "g1", false},
		{"/sys/kernel/config/usb_gadget/g1/functions/uvc.usb0/", "g1", false},
		{"g1/functions/uvc.usb0", "g1", false},
		{"/a/b/c", "a", false},
		{"/a/b", "", true},
		{"/a", "", true},
		{"/", "", true},
		{"functions/uvc.usb0", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			got, err := GadgetName(tt.dir)
			if tt.wantErr {
				require.ErrorIs(t, err, pkg.ErrMalformedPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	sys := fakeSysfs(t, "g1", "video2")
	r := Resolver{SysfsRoot: sys, DevRoot: "/dev"}

	got, err := r.Resolve("/sys/kernel/config/usb_gadget/g1/functions/uvc.usb0")
	require.NoError(t, err)
	assert.Equal(t, "/dev/video2", got)
}

func TestResolveFirstMatch(t *testing.T) {
	sys := fakeSysfs(t, "g1", "video5", "video3")
	v4l := filepath.Join(sys, "devices", "platform", "fe980000.usb", "gadget.0", "video4linux")
	require.NoError(t, os.WriteFile(filepath.Join(v4l, "video1"), nil, 0o644))

	got, err := Resolver{SysfsRoot: sys}.Resolve("/cfg/g1/functions/uvc.usb0")
	require.NoError(t, err)
	assert.Equal(t, "/dev/video3", got, "first directory in lexical order")
}

func TestResolveNotBound(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name:  "no driver directory",
			setup: func(t *testing.T) string { return t.TempDir() },
		},
		{
			name: "no bound instance",
			setup: func(t *testing.T) string {
				sys := fakeSysfs(t, "g1", "video0")
				driver := Resolver{SysfsRoot: sys}.DriverPath("g1")
				require.NoError(t, os.Remove(filepath.Join(driver, "gadget.0")))
				return sys
			},
		},
		{
			name:  "no video device",
			setup: func(t *testing.T) string { return fakeSysfs(t, "g1") },
		},
		{
			name: "no video4linux directory",
			setup: func(t *testing.T) string {
				sys := fakeSysfs(t, "g1")
				v4l := filepath.Join(sys, "devices", "platform", "fe980000.usb", "gadget.0", "video4linux")
				require.NoError(t, os.Remove(v4l))
				return sys
			},
		},
		{
			name:  "other gadget bound",
			setup: func(t *testing.T) string { return fakeSysfs(t, "g2", "video0") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolver{SysfsRoot: tt.setup(t)}
			_, err := r.Resolve("/cfg/g1/functions/uvc.usb0")
			require.ErrorIs(t, err, pkg.ErrNotBound)
		})
	}
}

func TestResolveMalformed(t *testing.T) {
	_, err := Resolver{SysfsRoot: t.TempDir()}.Resolve("/uvc.usb0")
	require.ErrorIs(t, err, pkg.ErrMalformedPath)
}

func TestResolverDefaults(t *testing.T) {
	assert.Equal(t,
		"/sys/module/libcomposite/drivers/gadget:configfs-gadget.g1",
		DefaultResolver.DriverPath("g1"))
}

func TestViewDevice(t *testing.T) {
	view, _, dir := register(t, mjpeg1080)
	sys := fakeSysfs(t, "g1", "video0")

	got, err := view.DeviceWith(Resolver{SysfsRoot: sys, DevRoot: "/dev"})
	require.NoError(t, err)
	assert.Equal(t, "/dev/video0", got)
	assert.Equal(t, "g1", filepath.Base(filepath.Dir(filepath.Dir(dir))))
}

func TestViewDeviceUnregistered(t *testing.T) {
	view, _ := NewBuilder().Build()
	_, err := view.Device()
	require.ErrorIs(t, err, pkg.ErrNotRegistered)
}
