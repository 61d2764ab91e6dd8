package xcursor

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writePNG stores a w x h PNG under dir and returns its path.
func writePNG(t *testing.T, dir, name string, w, h int, fill func(x, y int) color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, fill(x, y))
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func opaque(x, y int) color.NRGBA {
	return color.NRGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff}
}

// solidImage returns a valid w x h frame whose pixels encode their index.
func solidImage(w, h, xhot, yhot uint32) *Image {
	pixels := make([]uint32, w*h)
	for i := range pixels {
		pixels[i] = 0xff000000 | uint32(i)
	}
	return &Image{Width: w, Height: h, XHot: xhot, YHot: yhot, Pixels: pixels}
}
