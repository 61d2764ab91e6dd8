package xcursor

import "fmt"

// DefaultMaxDimension bounds width and height unless a Validator says
// otherwise.
const DefaultMaxDimension = 0x7fff

// Validator checks images before they are added to a File.
type Validator struct {
	// MaxDimension is the largest accepted width or height. Zero means
	// DefaultMaxDimension.
	MaxDimension uint32
}

func (v Validator) maxDimension() uint32 {
	if v.MaxDimension == 0 {
		return DefaultMaxDimension
	}
	return v.MaxDimension
}

// Validate returns a *ValidationError naming source if img cannot be encoded.
func (v Validator) Validate(img *Image, source string) error {
	limit := v.maxDimension()
	if img.Width == 0 || img.Height == 0 || img.Width > limit || img.Height > limit {
		return &ValidationError{
			Path:   source,
			Kind:   ErrImageTooLarge,
			Detail: fmt.Sprintf("%dx%d, each dimension must be in 1..%d", img.Width, img.Height, limit),
		}
	}
	if img.XHot >= img.Width {
		return &ValidationError{
			Path:   source,
			Kind:   ErrHotspotOutOfBounds,
			Detail: fmt.Sprintf("xhot %d not below width %d", img.XHot, img.Width),
		}
	}
	if img.YHot >= img.Height {
		return &ValidationError{
			Path:   source,
			Kind:   ErrHotspotOutOfBounds,
			Detail: fmt.Sprintf("yhot %d not below height %d", img.YHot, img.Height),
		}
	}
	if want := uint64(img.Width) * uint64(img.Height); uint64(len(img.Pixels)) != want {
		return &ValidationError{
			Path:   source,
			Kind:   ErrPixelCountMismatch,
			Detail: fmt.Sprintf("have %d pixels, want %d", len(img.Pixels), want),
		}
	}
	return nil
}
