package xcursor

import (
	"image"
	"image/color"
)

// Image is one decoded cursor frame. Pixels holds Width*Height ARGB values
// with premultiplied alpha, row-major.
type Image struct {
	Width  uint32
	Height uint32
	XHot   uint32
	YHot   uint32
	// Delay is the frame display time in milliseconds; 0 means not animated.
	Delay  uint32
	Pixels []uint32
}

// PremultiplyPixel packs a straight-alpha color into a premultiplied ARGB
// pixel. Channels are scaled as c*a/255 with truncation.
func PremultiplyPixel(c color.NRGBA) uint32 {
	a := uint32(c.A)
	r := uint32(c.R) * a / 255
	g := uint32(c.G) * a / 255
	b := uint32(c.B) * a / 255
	return a<<24 | r<<16 | g<<8 | b
}

// Premultiply converts img into a fresh premultiplied ARGB buffer. img is
// never modified, so each pixel is premultiplied exactly once.
func Premultiply(img image.Image) (pixels []uint32, width, height int) {
	bounds := img.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	pixels = make([]uint32, 0, width*height)

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, y):]
			for x := 0; x < width; x++ {
				p := row[x*4 : x*4+4 : x*4+4]
				pixels = append(pixels, PremultiplyPixel(color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}))
			}
		}
		return pixels, width, height
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixels = append(pixels, PremultiplyPixel(c))
		}
	}
	return pixels, width, height
}

// NewImage builds a frame from a decoded picture.
func NewImage(img image.Image, xhot, yhot, delay uint32) *Image {
	pixels, w, h := Premultiply(img)
	return &Image{
		Width:  uint32(w),
		Height: uint32(h),
		XHot:   xhot,
		YHot:   yhot,
		Delay:  delay,
		Pixels: pixels,
	}
}

// chunkSize is the number of bytes the image occupies in a file.
func (img *Image) chunkSize() int64 {
	return imageHeaderSize + 4*int64(img.Width)*int64(img.Height)
}
