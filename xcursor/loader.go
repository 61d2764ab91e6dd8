package xcursor

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// Loader resolves frame entries to images.
type Loader struct {
	// Prefix is the directory relative sources are resolved against.
	Prefix string
	// Resize scales every image with an explicit nominal size to
	// NominalSize x NominalSize and moves the hotspot with it.
	Resize bool
}

// Path returns the file the entry will be read from.
func (l Loader) Path(e FrameEntry) string {
	if l.Prefix == "" || filepath.IsAbs(e.Source) {
		return e.Source
	}
	return filepath.Join(l.Prefix, e.Source)
}

// Load decodes the PNG behind e and returns its premultiplied image along
// with the nominal size it belongs to.
func (l Loader) Load(e FrameEntry) (*Image, uint32, error) {
	return l.load(e, DefaultMaxDimension)
}

// load refuses to resize above limit so a bogus nominal size is rejected
// before the scaled image is allocated.
func (l Loader) load(e FrameEntry, limit uint32) (*Image, uint32, error) {
	path := l.Path(e)
	if l.Resize && e.NominalSize > limit {
		return nil, 0, &ValidationError{
			Path:   path,
			Kind:   ErrImageTooLarge,
			Detail: fmt.Sprintf("cannot resize to %dx%d, each dimension must be in 1..%d", e.NominalSize, e.NominalSize, limit),
		}
	}
	f, err := os.Open(path)
	if err != nil {
		var kind error
		if errors.Is(err, os.ErrNotExist) {
			kind = ErrFileNotFound
		}
		return nil, 0, &DecodeError{Path: path, Kind: kind, Err: err}
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		var kind error
		if errors.Is(err, image.ErrFormat) {
			kind = ErrUnsupportedFormat
		}
		return nil, 0, &DecodeError{Path: path, Kind: kind, Err: err}
	}

	nominal := e.NominalSize
	if nominal == 0 {
		b := src.Bounds()
		nominal = uint32(max(b.Dx(), b.Dy()))
	}

	xhot, yhot := e.XHot, e.YHot
	// Entries without a nominal size keep their own dimensions.
	if l.Resize && e.NominalSize != 0 {
		src, xhot, yhot = scale(src, int(nominal), xhot, yhot)
	}
	return NewImage(src, xhot, yhot, e.Delay), nominal, nil
}

// scale renders src as a size x size image, keeping the hotspot on the same
// spot of the picture.
func scale(src image.Image, size int, xhot, yhot uint32) (image.Image, uint32, uint32) {
	b := src.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return src, xhot, yhot
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src, b, draw.Src, nil)
	if b.Dx() > 0 {
		xhot = uint32(uint64(xhot) * uint64(size) / uint64(b.Dx()))
	}
	if b.Dy() > 0 {
		yhot = uint32(uint64(yhot) * uint64(size) / uint64(b.Dy()))
	}
	return dst, xhot, yhot
}
