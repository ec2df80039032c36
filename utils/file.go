package utils

import (
	"io"
	"net/http"
	"os"
	"strings"
)

// sniffLen is the number of bytes http.DetectContentType considers.
const sniffLen = 512

// DetectFileContentType returns the MIME type sniffed from the first bytes
// of the file found at path.
func DetectFileContentType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	return http.DetectContentType(buf[:n]), nil
}

// IsImageContentType reports whether the MIME type names an image.
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}
