package xcursor

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// goldenFile builds a two-size cursor whose second size is a two frame
// animation. Pixel i of a frame is 0xff<size><i>.
func goldenFile() *File {
	frame := func(nominal, w, h, xhot, yhot, delay uint32) *Image {
		pixels := make([]uint32, w*h)
		for i := range pixels {
			pixels[i] = 0xff000000 | nominal<<16 | uint32(i)
		}
		return &Image{Width: w, Height: h, XHot: xhot, YHot: yhot, Delay: delay, Pixels: pixels}
	}

	f := NewFile()
	f.Add(24, frame(24, 3, 2, 1, 1, 40), "24-1")
	f.Add(16, frame(16, 2, 2, 0, 1, 0), "16")
	f.Add(24, frame(24, 3, 2, 2, 0, 60), "24-2")
	return f
}

func TestGolden(t *testing.T) {
	path := filepath.Join("testdata", "two_sizes.xcur")

	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(goldenFile()))

	if *update {
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	}

	want, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, buf.Bytes())
}
