package asciify

import (
	"bytes"
	"errors"
	"image"
	"io"

	"github.com/disintegration/imaging"
	// imaging registers jpeg, png, gif, bmp and tiff; webp is added here.
	_ "golang.org/x/image/webp"
)

var errEmptyImage = errors.New("image has no pixels")

// GetImage opens and decodes the image found at path.
func GetImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, &DecodeError{Source: path, Err: err}
	}
	return checkBounds(img, path)
}

// DecodeImage decodes an image from r.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return checkBounds(img, "")
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (image.Image, error) {
	return DecodeImage(bytes.NewReader(data))
}

func checkBounds(img image.Image, source string) (image.Image, error) {
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, &DecodeError{Source: source, Err: errEmptyImage}
	}
	return img, nil
}
