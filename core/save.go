package asciify

import (
	"bufio"
	"os"

	"github.com/disintegration/imaging"
)

// SaveText writes the art as UTF-8 text to path.
func SaveText(art Art, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	w := bufio.NewWriter(f)
	if _, err := art.WriteTo(w); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return &WriteError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

// IsImagePath reports whether path has an extension of a supported
// raster output format.
func IsImagePath(path string) bool {
	_, err := imaging.FormatFromFilename(path)
	return err == nil
}

// SaveImage renders the art and encodes it to path. The format is chosen
// by the file extension.
func SaveImage(art Art, path string, opts RenderOptions) error {
	if !IsImagePath(path) {
		return &WriteError{Path: path, Err: imaging.ErrUnsupportedFormat}
	}
	img, err := art.Render(opts)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(100)); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
