package xcursor

import (
	"errors"
	"io"
	"log/slog"
)

var errNoFrames = errors.New("frame list is empty")

// Converter turns a frame list into an Xcursor file.
type Converter struct {
	Loader    Loader
	Validator Validator
	// Logger receives per-frame debug records. Nil discards them.
	Logger *slog.Logger
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// Build decodes and validates every entry of list. It fails on the first bad
// entry, so a returned File is always fully valid.
func (c *Converter) Build(list *FrameList) (*File, error) {
	if list.Len() == 0 {
		return nil, &ConfigError{Err: errNoFrames}
	}

	log := c.logger()
	file := NewFile()
	for _, entry := range list.Entries() {
		img, nominal, err := c.Loader.load(entry, c.Validator.maxDimension())
		if err != nil {
			return nil, err
		}
		path := c.Loader.Path(entry)
		if err := c.Validator.Validate(img, path); err != nil {
			return nil, err
		}
		log.Debug("resolved frame",
			"source", path,
			"size", nominal,
			"width", img.Width,
			"height", img.Height,
			"xhot", img.XHot,
			"yhot", img.YHot,
			"delay", img.Delay)
		file.Add(nominal, img, path)
	}
	for _, size := range list.Sizes() {
		if frames := list.Animation(size); len(frames) > 1 {
			log.Debug("animation", "size", size, "frames", len(frames))
		}
	}
	return file, nil
}

// Convert builds list and encodes it to w. Nothing is written unless every
// entry resolves.
func (c *Converter) Convert(list *FrameList, w io.Writer) error {
	file, err := c.Build(list)
	if err != nil {
		return err
	}
	if err := NewEncoder(w).Encode(file); err != nil {
		return err
	}
	c.logger().Info("wrote cursor", "images", file.Len(), "bytes", file.Size())
	return nil
}

// ConvertFile builds list and writes it to path with WriteFile.
func (c *Converter) ConvertFile(list *FrameList, path string) error {
	file, err := c.Build(list)
	if err != nil {
		return err
	}
	if err := WriteFile(path, file); err != nil {
		return err
	}
	c.logger().Info("wrote cursor", "path", path, "images", file.Len(), "bytes", file.Size())
	return nil
}
