package xcursor

import "sort"

// Format constants.
const (
	Magic          = "Xcur"
	FileVersion    = 0x00010000
	ImageType      = 0xfffd0002
	CommentType    = 0xfffe0001
	ImageVersion   = 1
	fileHeaderSize = 16
	tocEntrySize   = 12
	// imageHeaderSize covers header, type, subtype(nominal size), version,
	// width, height, xhot, yhot and delay.
	imageHeaderSize = 36
)

// Chunk pairs an image with the nominal size it is filed under.
type Chunk struct {
	NominalSize uint32
	Image       *Image
	// Source names where the image came from, for error messages.
	Source string
}

// File is the set of images that make up one cursor.
type File struct {
	chunks []Chunk
}

func NewFile() *File {
	return &File{}
}

// Add appends img under nominal size. Insertion order is kept among
// chunks of the same size.
func (f *File) Add(nominalSize uint32, img *Image, source string) {
	f.chunks = append(f.chunks, Chunk{NominalSize: nominalSize, Image: img, Source: source})
}

func (f *File) Len() int {
	return len(f.chunks)
}

// Chunks returns the chunks in file order: nominal size ascending, then
// insertion order.
func (f *File) Chunks() []Chunk {
	out := make([]Chunk, len(f.chunks))
	copy(out, f.chunks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NominalSize < out[j].NominalSize
	})
	return out
}

// TOCEntry is one table of contents record.
type TOCEntry struct {
	Type     uint32
	Subtype  uint32
	Position uint32
}

// Layout computes the table of contents for chunks as they will be written.
// Positions are only meaningful if the total size fits in 32 bits.
func Layout(chunks []Chunk) []TOCEntry {
	toc := make([]TOCEntry, len(chunks))
	pos := int64(fileHeaderSize + tocEntrySize*len(chunks))
	for i, c := range chunks {
		toc[i] = TOCEntry{Type: ImageType, Subtype: c.NominalSize, Position: uint32(pos)}
		pos += c.Image.chunkSize()
	}
	return toc
}

// Size returns the encoded size of f in bytes.
func (f *File) Size() int64 {
	n := int64(fileHeaderSize + tocEntrySize*len(f.chunks))
	for _, c := range f.chunks {
		n += c.Image.chunkSize()
	}
	return n
}
