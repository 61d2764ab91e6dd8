package xcursor

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Decoded is the content of a parsed Xcursor file.
type Decoded struct {
	Version uint32
	TOC     []TOCEntry
	// Chunks holds the image chunks in TOC order. Chunks of other types are
	// listed in TOC but not decoded.
	Chunks []Chunk
}

// File returns the decoded images as a File that encodes back to the same
// images.
func (d *Decoded) File() *File {
	f := NewFile()
	for _, c := range d.Chunks {
		f.Add(c.NominalSize, c.Image, c.Source)
	}
	return f
}

// Decode parses an Xcursor file.
func Decode(r io.Reader) (*Decoded, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioError("read", err)
	}

	var header fileHeader
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: short file header", ErrInvalidFile)
	}
	if string(header.Magic[:]) != Magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidFile, header.Magic[:])
	}
	if header.Header < fileHeaderSize {
		return nil, fmt.Errorf("%w: header size %d", ErrInvalidFile, header.Header)
	}
	tocEnd := uint64(header.Header) + uint64(header.NTOC)*tocEntrySize
	if tocEnd > uint64(len(data)) {
		return nil, fmt.Errorf("%w: table of contents with %d entries exceeds file size", ErrInvalidFile, header.NTOC)
	}

	d := &Decoded{
		Version: header.Version,
		TOC:     make([]TOCEntry, header.NTOC),
	}
	if err := binary.Read(bytes.NewReader(data[header.Header:tocEnd]), binary.LittleEndian, d.TOC); err != nil {
		return nil, fmt.Errorf("%w: table of contents: %v", ErrInvalidFile, err)
	}

	for i, entry := range d.TOC {
		if entry.Type != ImageType {
			continue
		}
		img, err := decodeImage(data, entry)
		if err != nil {
			return nil, fmt.Errorf("%w: toc entry %d: %v", ErrInvalidFile, i, err)
		}
		d.Chunks = append(d.Chunks, Chunk{
			NominalSize: entry.Subtype,
			Image:       img,
			Source:      fmt.Sprintf("chunk %d", i),
		})
	}
	return d, nil
}

func decodeImage(data []byte, entry TOCEntry) (*Image, error) {
	pos := uint64(entry.Position)
	if pos+imageHeaderSize > uint64(len(data)) {
		return nil, fmt.Errorf("image header at %d past end of file", pos)
	}

	var ih imageHeader
	if err := binary.Read(bytes.NewReader(data[pos:pos+imageHeaderSize]), binary.LittleEndian, &ih); err != nil {
		return nil, err
	}
	if ih.Type != ImageType {
		return nil, fmt.Errorf("chunk type %#x, want %#x", ih.Type, uint32(ImageType))
	}
	if ih.Header < imageHeaderSize {
		return nil, fmt.Errorf("image header size %d", ih.Header)
	}
	if ih.Subtype != entry.Subtype {
		return nil, fmt.Errorf("chunk nominal size %d does not match toc %d", ih.Subtype, entry.Subtype)
	}

	start := pos + uint64(ih.Header)
	if start > uint64(len(data)) {
		return nil, fmt.Errorf("image header size %d runs past end of file", ih.Header)
	}
	// Compared as a pixel count so the byte size cannot overflow.
	if uint64(ih.Width)*uint64(ih.Height) > (uint64(len(data))-start)/4 {
		return nil, fmt.Errorf("%dx%d pixels at %d past end of file", ih.Width, ih.Height, start)
	}
	end := start + 4*uint64(ih.Width)*uint64(ih.Height)

	pixels := make([]uint32, uint64(ih.Width)*uint64(ih.Height))
	if err := binary.Read(bytes.NewReader(data[start:end]), binary.LittleEndian, pixels); err != nil {
		return nil, err
	}
	return &Image{
		Width:  ih.Width,
		Height: ih.Height,
		XHot:   ih.XHot,
		YHot:   ih.YHot,
		Delay:  ih.Delay,
		Pixels: pixels,
	}, nil
}
