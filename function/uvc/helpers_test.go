package uvc

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ardnew/usbgadget/pkg"
)

// kernelGroups are the default groups configfs creates with a uvc function.
var kernelGroups = []string{
	"control/class/fs",
	"control/class/ss",
	"control/header",
	"streaming/class/fs",
	"streaming/class/hs",
	"streaming/class/ss",
	"streaming/header",
}

// newFunctionDir creates <tmp>/<gadget>/functions/uvc.usb0 populated the
// way the kernel populates a fresh uvc function, and returns its path.
func newFunctionDir(t *testing.T, gadget string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), gadget, "functions", "uvc.usb0")
	for _, group := range kernelGroups {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, group), 0o755))
	}
	return dir
}

// dumpTree renders every entry beneath root, one per line in lexical walk
// order: "d" directories, "f" files with quoted contents, "l" symlinks with
// targets relative to root.
func dumpTree(t *testing.T, root string) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		switch {
		case d.Type()&fs.ModeSymlink != 0:
			target, err := os.Readlink(path)
			if err != nil {
				return err
			}
			if filepath.IsAbs(target) {
				if target, err = filepath.Rel(root, target); err != nil {
					return err
				}
			}
			fmt.Fprintf(&buf, "l %s -> %s\n", rel, filepath.ToSlash(target))
		case d.IsDir():
			fmt.Fprintf(&buf, "d %s\n", rel)
		default:
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(&buf, "f %s %q\n", rel, data)
		}
		return nil
	})
	require.NoError(t, err)
	return buf.Bytes()
}

// symlinks returns the paths of all symlinks beneath root.
func symlinks(t *testing.T, root string) []string {
	t.Helper()
	var links []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type()&fs.ModeSymlink != 0 {
			rel, _ := filepath.Rel(root, path)
			links = append(links, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	return links
}

var (
	mjpeg1080 = Frame{
		Format:         FormatMJPEG,
		Name:           "mjpeg",
		Width:          1920,
		Height:         1080,
		FrameIntervals: []uint32{Fps(15), Fps(30)},
	}
	yuyv480 = Frame{
		Format:         FormatUncompressed,
		Name:           "yuyv",
		Width:          640,
		Height:         480,
		FrameIntervals: []uint32{Fps(30)},
	}
)

// captureLogs routes gadget logging to a buffer at debug level for the
// duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger, level := pkg.DefaultLogger, pkg.GetLogLevel()
	pkg.SetLogLevel(slog.LevelDebug)
	pkg.SetLogger(pkg.NewLogger(&buf, nil))
	t.Cleanup(func() {
		pkg.SetLogger(logger)
		pkg.SetLogLevel(level)
	})
	return &buf
}

// logLines returns the captured lines whose message is msg.
func logLines(buf *bytes.Buffer, msg string) []string {
	var lines []string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "msg=\""+msg+"\"") {
			lines = append(lines, line)
		}
	}
	return lines
}
