package asciify

import (
	"image"
	"io"
	"strconv"

	"github.com/disintegration/imaging"
)

// Converter turns images into Art using a fixed glyph ramp.
// It holds only read-only configuration and is safe for concurrent use.
type Converter struct {
	charset Charset
	filter  imaging.ResampleFilter
	aspect  float64
}

// Option configures a Converter.
type Option func(*Converter)

// WithFilter sets the resampling filter used to resize the source image.
func WithFilter(f imaging.ResampleFilter) Option {
	return func(c *Converter) {
		c.filter = f
	}
}

// WithAspect overrides the cell aspect compensation factor. Non-positive
// values are ignored.
func WithAspect(aspect float64) Option {
	return func(c *Converter) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// Options holds the per-call conversion parameters.
type Options struct {
	// Width is the number of columns of the art. Zero means DefaultWidth.
	Width int
	// Invert flips the ramp for this call only.
	Invert bool
}

// NewConverter creates a converter for the given charset.
// The zero Charset selects the detailed preset.
func NewConverter(cs Charset, opts ...Option) *Converter {
	if cs.ramp.Len() == 0 {
		cs = Detailed
	}
	c := &Converter{
		charset: cs,
		filter:  imaging.CatmullRom,
		aspect:  CellAspect,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Charset returns the charset the converter was built with.
func (c *Converter) Charset() Charset { return c.charset }

// Ramp returns the glyph ramp of the converter.
func (c *Converter) Ramp() Ramp { return c.charset.ramp }

// ConvertFile decodes the image at path and converts it.
func (c *Converter) ConvertFile(path string, opts Options) (Art, error) {
	img, err := GetImage(path)
	if err != nil {
		return Art{}, err
	}
	return c.ConvertImage(img, opts)
}

// ConvertBytes decodes an in-memory image and converts it.
func (c *Converter) ConvertBytes(data []byte, opts Options) (Art, error) {
	img, err := DecodeBytes(data)
	if err != nil {
		return Art{}, err
	}
	return c.ConvertImage(img, opts)
}

// Convert decodes the image read from r and converts it.
func (c *Converter) Convert(r io.Reader, opts Options) (Art, error) {
	img, err := DecodeImage(r)
	if err != nil {
		return Art{}, err
	}
	return c.ConvertImage(img, opts)
}

// ConvertImage resizes img, reduces it to grayscale and maps every pixel
// to a glyph. On failure the returned Art is empty.
func (c *Converter) ConvertImage(img image.Image, opts Options) (Art, error) {
	width := opts.Width
	if width == 0 {
		width = DefaultWidth
	}
	if width < 0 {
		return Art{}, &ConfigError{Field: "width", Value: strconv.Itoa(width), Reason: "must be greater than zero"}
	}

	resized, err := Resize(img, width, c.aspect, c.filter)
	if err != nil {
		return Art{}, err
	}
	gray := ToGrayscale(resized)

	ramp := c.charset.ramp
	if opts.Invert {
		ramp = ramp.Reverse()
	}
	return newArt(MapPixels(gray, ramp), gray.Width), nil
}
