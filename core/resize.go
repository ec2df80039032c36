package asciify

import (
	"image"
	"math"
	"strconv"

	"github.com/disintegration/imaging"
)

// CellAspect compensates for monospace cells being taller than they are wide.
const CellAspect = 0.55

// DefaultWidth is the number of columns used when no width is requested.
const DefaultWidth = 100

var filters = map[string]imaging.ResampleFilter{
	"nearest":    imaging.NearestNeighbor,
	"box":        imaging.Box,
	"linear":     imaging.Linear,
	"catmullrom": imaging.CatmullRom,
	"lanczos":    imaging.Lanczos,
}

// ParseFilter returns the resampling filter registered under name.
func ParseFilter(name string) (imaging.ResampleFilter, error) {
	f, ok := filters[name]
	if !ok {
		return imaging.ResampleFilter{}, &ConfigError{Field: "filter", Value: name, Reason: "unknown resampling filter"}
	}
	return f, nil
}

// RowCount returns the number of text rows for a source of w×h pixels
// rendered targetWidth columns wide. The result is never less than one.
func RowCount(w, h, targetWidth int, aspect float64) int {
	ratio := float64(h) / float64(w)
	rows := int(math.Round(float64(targetWidth) * ratio * aspect))
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Resize scales img to exactly targetWidth columns and the row count
// given by RowCount, without cropping or padding.
func Resize(img image.Image, targetWidth int, aspect float64, filter imaging.ResampleFilter) (*image.NRGBA, error) {
	if targetWidth <= 0 {
		return nil, &ConfigError{Field: "width", Value: strconv.Itoa(targetWidth), Reason: "must be greater than zero"}
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &DecodeError{Err: errEmptyImage}
	}
	rows := RowCount(b.Dx(), b.Dy(), targetWidth, aspect)

	return imaging.Resize(img, targetWidth, rows, filter), nil
}
