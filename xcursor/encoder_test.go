package xcursor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, f *File) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).Encode(f))
	return buf.Bytes()
}

func u32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off:])
}

func TestEncodeHeaderAndTOC(t *testing.T) {
	f := NewFile()
	f.Add(32, solidImage(32, 32, 4, 4), "icon32.png")
	f.Add(16, solidImage(16, 16, 2, 2), "icon16.png")

	out := encode(t, f)
	require.Len(t, out, int(f.Size()))

	assert.Equal(t, "Xcur", string(out[0:4]))
	assert.Equal(t, uint32(16), u32(out, 4))
	assert.Equal(t, uint32(0x00010000), u32(out, 8))
	assert.Equal(t, uint32(2), u32(out, 12))

	// toc[0]: size 16 at 16 + 2*12
	assert.Equal(t, uint32(0xfffd0002), u32(out, 16))
	assert.Equal(t, uint32(16), u32(out, 20))
	assert.Equal(t, uint32(40), u32(out, 24))
	// toc[1]: size 32 after the 16x16 chunk
	assert.Equal(t, uint32(0xfffd0002), u32(out, 28))
	assert.Equal(t, uint32(32), u32(out, 32))
	assert.Equal(t, uint32(40+36+4*256), u32(out, 36))

	chunk := out[40:]
	assert.Equal(t, []uint32{36, 0xfffd0002, 16, 1, 16, 16, 2, 2, 0}, []uint32{
		u32(chunk, 0), u32(chunk, 4), u32(chunk, 8), u32(chunk, 12), u32(chunk, 16),
		u32(chunk, 20), u32(chunk, 24), u32(chunk, 28), u32(chunk, 32),
	})
	assert.Equal(t, uint32(0xff000000), u32(chunk, 36))
	assert.Equal(t, uint32(0xff000001), u32(chunk, 40))
}

func TestEncodeTOCSortedBySize(t *testing.T) {
	f := NewFile()
	f.Add(32, solidImage(32, 32, 0, 0), "32.png")
	f.Add(16, solidImage(16, 16, 0, 0), "16.png")
	f.Add(48, solidImage(48, 48, 0, 0), "48.png")

	out := encode(t, f)
	sizes := []uint32{u32(out, 20), u32(out, 32), u32(out, 44)}
	assert.Equal(t, []uint32{16, 32, 48}, sizes)
}

func TestEncodeKeepsAnimationOrder(t *testing.T) {
	f := NewFile()
	for i, delay := range []uint32{10, 20, 30} {
		img := solidImage(8, 8, 0, 0)
		img.Delay = delay
		f.Add(24, img, string(rune('a'+i)))
	}
	f.Add(16, solidImage(4, 4, 0, 0), "small")

	var sources []string
	for _, c := range f.Chunks() {
		sources = append(sources, c.Source)
	}
	assert.Equal(t, []string{"small", "a", "b", "c"}, sources)

	decoded, err := Decode(bytes.NewReader(encode(t, f)))
	require.NoError(t, err)
	var delays []uint32
	for _, c := range decoded.Chunks[1:] {
		delays = append(delays, c.Image.Delay)
	}
	assert.Equal(t, []uint32{10, 20, 30}, delays)
}

func TestLayoutOffsets(t *testing.T) {
	dims := [][2]uint32{{5, 3}, {1, 1}, {32, 32}, {7, 9}, {64, 2}}
	f := NewFile()
	for i, d := range dims {
		f.Add(uint32(10*(i+1)), solidImage(d[0], d[1], 0, 0), "")
	}

	chunks := f.Chunks()
	toc := Layout(chunks)
	require.Len(t, toc, len(dims))

	want := uint32(16 + 12*len(dims))
	for i, entry := range toc {
		assert.Equal(t, want, entry.Position, "entry %d", i)
		img := chunks[i].Image
		want += 36 + 4*img.Width*img.Height
	}
	assert.Equal(t, int64(want), f.Size())

	out := encode(t, f)
	for i, entry := range toc {
		assert.Equal(t, entry.Position, u32(out, 16+12*i+8))
		assert.Equal(t, uint32(36), u32(out, int(entry.Position)), "chunk %d must start at its toc offset", i)
	}
}

func TestEncodeRejectsPixelMismatchBeforeWriting(t *testing.T) {
	f := NewFile()
	f.Add(16, solidImage(16, 16, 0, 0), "good.png")
	f.Add(24, &Image{Width: 24, Height: 24, Pixels: make([]uint32, 10)}, "bad.png")

	var buf bytes.Buffer
	err := NewEncoder(&buf).Encode(f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPixelCountMismatch))
	assert.Contains(t, err.Error(), "bad.png")
	assert.Zero(t, buf.Len())
}

type failingWriter struct {
	remaining int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.remaining {
		n := w.remaining
		w.remaining = 0
		return n, errors.New("disk full")
	}
	w.remaining -= len(p)
	return len(p), nil
}

func TestEncodeReportsWriteFailure(t *testing.T) {
	f := NewFile()
	for i := 0; i < 5; i++ {
		f.Add(uint32(16+i), solidImage(64, 64, 0, 0), "")
	}

	err := NewEncoder(&failingWriter{remaining: 20000}).Encode(f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.Contains(t, err.Error(), "disk full")
}

func TestEncodeEmptyFile(t *testing.T) {
	out := encode(t, NewFile())
	assert.Len(t, out, 16)
	assert.Equal(t, uint32(0), u32(out, 12))
}
