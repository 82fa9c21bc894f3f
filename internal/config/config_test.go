package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/usbgadget/function/uvc"
	"github.com/ardnew/usbgadget/pkg"
)

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/webcam.yaml")
	require.NoError(t, err)
	require.Len(t, cfg.Frames, 3)

	frames, err := cfg.UVCFrames()
	require.NoError(t, err)
	require.Len(t, frames, 3)

	assert.Equal(t, uvc.Frame{
		Format:         uvc.FormatMJPEG,
		Name:           "mjpeg",
		Width:          1920,
		Height:         1080,
		FrameIntervals: []uint32{333333, 666666},
	}, frames[0])
	assert.Equal(t, []uint32{333333, 500000}, frames[1].FrameIntervals)
	assert.Equal(t, uvc.FormatUncompressed, frames[2].Format)
	assert.Equal(t, []uint32{333333}, frames[2].FrameIntervals)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	frames, err := cfg.UVCFrames()
	require.NoError(t, err)
	assert.Empty(t, frames)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown format", "frames: [{format: h265, name: a, width: 1, height: 1, fps: [30]}]"},
		{"zero width", "frames: [{format: mjpeg, name: a, width: 0, height: 1, fps: [30]}]"},
		{"zero fps", "frames: [{format: mjpeg, name: a, width: 1, height: 1, fps: [0]}]"},
		{"slash in name", "frames: [{format: mjpeg, name: a/b, width: 1, height: 1, fps: [30]}]"},
		{"dotdot name", "frames: [{format: mjpeg, name: '..', width: 1, height: 1, fps: [30]}]"},
		{"missing name", "frames: [{format: mjpeg, width: 1, height: 1, fps: [30]}]"},
		{"unknown field", "frames: [{format: mjpeg, name: a, width: 1, height: 1, rate: 30}]"},
		{"not yaml", "frames: ["},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.ErrorIs(t, err, pkg.ErrInvalidConfig)
		})
	}
}

func TestUVCFramesNoIntervals(t *testing.T) {
	cfg, err := Parse([]byte("frames: [{format: mjpeg, name: a, width: 640, height: 480}]"))
	require.NoError(t, err)

	_, err = cfg.UVCFrames()
	require.ErrorIs(t, err, pkg.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "no frame intervals")
}

func TestUVCFramesDuplicate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "same format",
			doc: `
frames:
  - {format: mjpeg, name: a, width: 640, height: 480, fps: [30]}
  - {format: mjpeg, name: a, width: 1280, height: 720, fps: [30]}
`,
			want: "frames 0 and 1 share header link streaming/header/h/a",
		},
		{
			name: "across formats",
			doc: `
frames:
  - {format: mjpeg, name: hd, width: 1280, height: 720, fps: [30]}
  - {format: uncompressed, name: hd, width: 1280, height: 720, fps: [30]}
`,
			want: "frames 0 and 1 share header link streaming/header/h/hd",
		},
		{
			name: "later frame",
			doc: `
frames:
  - {format: mjpeg, name: a, width: 640, height: 480, fps: [30]}
  - {format: uncompressed, name: b, width: 640, height: 480, fps: [30]}
  - {format: framebased, name: a, width: 640, height: 480, fps: [30]}
`,
			want: "frames 0 and 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.doc))
			require.NoError(t, err, "schema accepts duplicate names")

			_, err = cfg.UVCFrames()
			require.ErrorIs(t, err, pkg.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)

			_, err = cfg.Builder()
			require.ErrorIs(t, err, pkg.ErrInvalidConfig)
		})
	}
}

func TestParseNormalizesNames(t *testing.T) {
	decomposed := "came\u0301"
	composed := "cam\u00e9"
	doc := "frames:\n" +
		"  - {format: mjpeg, name: \"" + decomposed + "\", width: 1, height: 1, fps: [1]}\n" +
		"  - {format: mjpeg, name: \"" + composed + "\", width: 2, height: 2, fps: [1]}\n"

	cfg, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, composed, cfg.Frames[0].Name)
	assert.Equal(t, cfg.Frames[0].Name, cfg.Frames[1].Name)

	_, err = cfg.UVCFrames()
	require.ErrorIs(t, err, pkg.ErrInvalidConfig, "normalized names collide")
}

func TestBuilder(t *testing.T) {
	cfg, err := Load("testdata/webcam.yaml")
	require.NoError(t, err)

	b, err := cfg.Builder()
	require.NoError(t, err)
	assert.Len(t, b.Frames(), 3)
}

func TestKnownFormatsMatchSchema(t *testing.T) {
	for _, format := range KnownFormats {
		doc := "frames: [{format: " + string(format) + ", name: a, width: 1, height: 1, fps: [1]}]"
		_, err := Parse([]byte(doc))
		assert.NoError(t, err, "format %s", format)
	}
}
