package xcursor

import "sort"

// FrameEntry is one record of a frame list. NominalSize 0 means the size is
// taken from the decoded image.
type FrameEntry struct {
	NominalSize uint32
	Source      string
	XHot        uint32
	YHot        uint32
	Delay       uint32
	// Line is the config line the entry came from, 0 if built in code.
	Line int
}

// FrameList is an ordered list of frame entries. Entries sharing a nominal
// size form an animation played in insertion order.
type FrameList struct {
	entries []FrameEntry
}

func NewFrameList(entries ...FrameEntry) *FrameList {
	l := &FrameList{}
	for _, e := range entries {
		l.Add(e)
	}
	return l
}

func (l *FrameList) Add(e FrameEntry) {
	l.entries = append(l.entries, e)
}

func (l *FrameList) Len() int {
	return len(l.entries)
}

// Entries returns the entries in insertion order.
func (l *FrameList) Entries() []FrameEntry {
	out := make([]FrameEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Sizes returns the distinct explicit nominal sizes, ascending.
func (l *FrameList) Sizes() []uint32 {
	seen := make(map[uint32]bool)
	var sizes []uint32
	for _, e := range l.entries {
		if e.NominalSize == 0 || seen[e.NominalSize] {
			continue
		}
		seen[e.NominalSize] = true
		sizes = append(sizes, e.NominalSize)
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i] < sizes[j] })
	return sizes
}

// Animation returns the frames of one nominal size in playback order.
func (l *FrameList) Animation(size uint32) []FrameEntry {
	var frames []FrameEntry
	for _, e := range l.entries {
		if e.NominalSize == size {
			frames = append(frames, e)
		}
	}
	return frames
}
