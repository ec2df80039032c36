package asciify

import (
	"errors"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// RenderOptions controls how the art is drawn onto an image.
type RenderOptions struct {
	// Foreground and Background are hex colors, e.g. "#1e1e1e".
	Foreground string
	Background string
	// FontPath points to a TrueType font. Empty uses the built-in 7x13 face.
	FontPath string
	// FontSize is the font size in points, used with FontPath.
	FontSize float64
}

// DefaultRenderOptions draws black glyphs on a white background.
var DefaultRenderOptions = RenderOptions{
	Foreground: "#000000",
	Background: "#ffffff",
	FontSize:   12,
}

// Coverage of the shade glyphs, drawn as filled cells instead of font glyphs.
var shades = map[rune]float64{
	'█': 1.0,
	'▓': 0.75,
	'▒': 0.5,
	'░': 0.25,
}

var errNothingToRender = errors.New("art has no lines")

// Render draws the art onto a new image, one font cell per glyph.
func (a Art) Render(opts RenderOptions) (image.Image, error) {
	if a.Empty() {
		return nil, errNothingToRender
	}
	if opts.Foreground == "" {
		opts.Foreground = DefaultRenderOptions.Foreground
	}
	if opts.Background == "" {
		opts.Background = DefaultRenderOptions.Background
	}
	if opts.FontSize <= 0 {
		opts.FontSize = DefaultRenderOptions.FontSize
	}

	fg, err := colorful.Hex(opts.Foreground)
	if err != nil {
		return nil, &ConfigError{Field: "foreground", Value: opts.Foreground, Reason: err.Error()}
	}
	bg, err := colorful.Hex(opts.Background)
	if err != nil {
		return nil, &ConfigError{Field: "background", Value: opts.Background, Reason: err.Error()}
	}

	var face font.Face = basicfont.Face7x13
	if opts.FontPath != "" {
		face, err = gg.LoadFontFace(opts.FontPath, opts.FontSize)
		if err != nil {
			return nil, err
		}
	}
	metrics := face.Metrics()
	cellH := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()
	adv, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, errors.New("font face has no glyph for 'M'")
	}
	cellW := adv.Ceil()

	dc := gg.NewContext(a.width*cellW, len(a.lines)*cellH)
	dc.SetFontFace(face)
	dc.SetColor(bg)
	dc.Clear()

	r, g, b := fg.RGB255()
	for row, line := range a.lines {
		col := 0
		for _, glyph := range line {
			x, y := float64(col*cellW), float64(row*cellH)
			if cov, ok := shades[glyph]; ok {
				dc.DrawRectangle(x, y, float64(cellW), float64(cellH))
				dc.SetColor(color.NRGBA{R: r, G: g, B: b, A: uint8(cov*255 + 0.5)})
				dc.Fill()
			} else if glyph != ' ' {
				dc.SetColor(fg)
				dc.DrawString(string(glyph), x, y+float64(ascent))
			}
			col++
		}
	}
	return dc.Image(), nil
}
