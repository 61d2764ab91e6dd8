package xcursor

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

type fileHeader struct {
	Magic   [4]byte
	Header  uint32
	Version uint32
	NTOC    uint32
}

type imageHeader struct {
	Header  uint32
	Type    uint32
	Subtype uint32
	Version uint32
	Width   uint32
	Height  uint32
	XHot    uint32
	YHot    uint32
	Delay   uint32
}

type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes f as an Xcursor file. The layout is computed and checked
// before the first byte is written. An ErrIO error means the output is
// partial and must be discarded by the caller.
func (e *Encoder) Encode(f *File) error {
	chunks := f.Chunks()
	for _, c := range chunks {
		img := c.Image
		if want := uint64(img.Width) * uint64(img.Height); uint64(len(img.Pixels)) != want {
			return &ValidationError{
				Path:   c.Source,
				Kind:   ErrPixelCountMismatch,
				Detail: fmt.Sprintf("have %d pixels, want %d", len(img.Pixels), want),
			}
		}
	}
	if size := f.Size(); size > math.MaxUint32 {
		return &ValidationError{
			Kind:   ErrImageTooLarge,
			Detail: fmt.Sprintf("encoded file would be %d bytes", size),
		}
	}
	toc := Layout(chunks)

	bw := bufio.NewWriter(e.w)

	header := fileHeader{
		Header:  fileHeaderSize,
		Version: FileVersion,
		NTOC:    uint32(len(toc)),
	}
	copy(header.Magic[:], Magic)
	if err := binary.Write(bw, binary.LittleEndian, header); err != nil {
		return ioError("write file header", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, toc); err != nil {
		return ioError("write table of contents", err)
	}

	for _, c := range chunks {
		img := c.Image
		ih := imageHeader{
			Header:  imageHeaderSize,
			Type:    ImageType,
			Subtype: c.NominalSize,
			Version: ImageVersion,
			Width:   img.Width,
			Height:  img.Height,
			XHot:    img.XHot,
			YHot:    img.YHot,
			Delay:   img.Delay,
		}
		if err := binary.Write(bw, binary.LittleEndian, ih); err != nil {
			return ioError("write image header for "+c.Source, err)
		}
		if err := binary.Write(bw, binary.LittleEndian, img.Pixels); err != nil {
			return ioError("write pixels for "+c.Source, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return ioError("flush", err)
	}
	return nil
}
