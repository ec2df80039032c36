package asciify

import (
	"image"

	"github.com/disintegration/imaging"
)

// Grayscale holds one luminance sample per pixel in row-major order.
type Grayscale struct {
	Width  int
	Height int
	Pix    []uint8
}

// At returns the intensity at column x and row y.
func (g *Grayscale) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// ToGrayscale reduces img to luminance using the ITU-R 601-2 weights
// (0.299 R + 0.587 G + 0.114 B). The alpha channel is ignored.
func ToGrayscale(img image.Image) *Grayscale {
	gray := imaging.Grayscale(img)
	cols, rows := gray.Bounds().Dx(), gray.Bounds().Dy()

	pixels := make([]uint8, cols*rows)
	for r := 0; r < rows; r++ {
		row := gray.Pix[r*gray.Stride : r*gray.Stride+cols*4]
		for c := 0; c < cols; c++ {
			// The three color channels carry the same value after Grayscale.
			pixels[r*cols+c] = row[c*4]
		}
	}
	return &Grayscale{
		Width:  cols,
		Height: rows,
		Pix:    pixels,
	}
}
