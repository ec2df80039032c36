package asciify

// RampIndex returns the bucket of intensity p in a ramp of n glyphs.
// The index is floor(p*n/256), clamped to n-1.
func RampIndex(p uint8, n int) int {
	idx := int(p) * n / 256
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// MapPixels maps every intensity of gray onto a glyph of ramp.
func MapPixels(gray *Grayscale, ramp Ramp) []rune {
	// Lookup table indexed by intensity.
	var lut [256]rune
	for p := range lut {
		lut[p] = ramp.At(RampIndex(uint8(p), ramp.Len()))
	}

	glyphs := make([]rune, len(gray.Pix))
	for i, p := range gray.Pix {
		glyphs[i] = lut[p]
	}
	return glyphs
}
