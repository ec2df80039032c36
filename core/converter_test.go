package asciify_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	asciify "github.com/esimov/asciify/core"
)

var (
	gradientImg *image.NRGBA
	gradientPNG []byte
)

func init() {
	// Horizontal gradient from black to white, 256x128 pixels.
	gradientImg = image.NewNRGBA(image.Rect(0, 0, 256, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 256; x++ {
			v := uint8(x)
			gradientImg.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, gradientImg); err != nil {
		log.Fatalf("error encoding the gradient fixture: %v", err)
	}
	gradientPNG = buf.Bytes()
}

// stripe returns a 1-row image with the given gray intensities.
func stripe(values ...uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(values), 1))
	for x, v := range values {
		img.SetNRGBA(x, 0, color.NRGBA{R: v, G: v, B: v, A: 255})
	}
	return img
}

func TestConverter_TwoPixelStripeShouldMapToRampEnds(t *testing.T) {
	cs, err := asciify.Custom("@#*+=-:. ")
	if err != nil {
		t.Fatalf("failed creating the custom charset: %v", err)
	}
	conv := asciify.NewConverter(cs)

	art, err := conv.ConvertImage(stripe(0, 255), asciify.Options{Width: 2})
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if got := art.String(); got != "@ \n" {
		t.Fatalf("expected %q, got %q", "@ \n", got)
	}
}

func TestConverter_OutputShouldHaveRequestedDimensions(t *testing.T) {
	conv := asciify.NewConverter(asciify.Detailed)

	art, err := conv.ConvertBytes(gradientPNG, asciify.Options{Width: 64})
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	expectedRows := asciify.RowCount(256, 128, 64, asciify.CellAspect)
	if art.Height() != expectedRows {
		t.Fatalf("expected %d lines, got %d", expectedRows, art.Height())
	}
	for i, line := range art.Lines() {
		if n := utf8.RuneCountInString(line); n != 64 {
			t.Fatalf("line %d should have 64 glyphs, got %d", i, n)
		}
	}
	if !strings.HasSuffix(art.String(), "\n") {
		t.Fatalf("the last line should be terminated by a newline")
	}
	if c := strings.Count(art.String(), "\n"); c != expectedRows {
		t.Fatalf("expected %d newlines, got %d", expectedRows, c)
	}
}

func TestConverter_DefaultWidthShouldBeUsedWhenZero(t *testing.T) {
	conv := asciify.NewConverter(asciify.Simple)

	art, err := conv.ConvertImage(gradientImg, asciify.Options{})
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if art.Width() != asciify.DefaultWidth {
		t.Fatalf("expected width %d, got %d", asciify.DefaultWidth, art.Width())
	}
}

func TestConverter_RepeatedConversionShouldBeDeterministic(t *testing.T) {
	conv := asciify.NewConverter(asciify.Blocks)
	opts := asciify.Options{Width: 40}

	first, err := conv.ConvertBytes(gradientPNG, opts)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	second, err := conv.ConvertBytes(gradientPNG, opts)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("converting the same image twice should produce identical output")
	}
}

func TestConverter_InvertShouldMatchReversedRamp(t *testing.T) {
	conv := asciify.NewConverter(asciify.Detailed)
	reversed, err := asciify.Custom(asciify.Detailed.Ramp().Reverse().String())
	if err != nil {
		t.Fatalf("failed creating the reversed charset: %v", err)
	}
	opts := asciify.Options{Width: 50, Invert: true}

	inverted, err := conv.ConvertImage(gradientImg, opts)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	expected, err := asciify.NewConverter(reversed).ConvertImage(gradientImg, asciify.Options{Width: 50})
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if inverted.String() != expected.String() {
		t.Fatalf("inverted output should equal the output of the reversed ramp")
	}
}

func TestConverter_InvertShouldNotMutateRamp(t *testing.T) {
	conv := asciify.NewConverter(asciify.Detailed)
	opts := asciify.Options{Width: 30}

	before, err := conv.ConvertImage(gradientImg, opts)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if _, err := conv.ConvertImage(gradientImg, asciify.Options{Width: 30, Invert: true}); err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	after, err := conv.ConvertImage(gradientImg, opts)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}

	if conv.Ramp().String() != asciify.CharsDetailed {
		t.Fatalf("ramp should stay %q, got %q", asciify.CharsDetailed, conv.Ramp().String())
	}
	if before.String() != after.String() {
		t.Fatalf("a non inverted conversion after an inverted one should use the original ramp")
	}
}

func TestConverter_CorruptInputShouldReturnDecodeError(t *testing.T) {
	conv := asciify.NewConverter(asciify.Detailed)

	art, err := conv.ConvertBytes([]byte("definitely not an image"), asciify.Options{})
	var decErr *asciify.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected a DecodeError, got %v", err)
	}
	if !art.Empty() || art.String() != "" {
		t.Fatalf("no output should be produced on decode failure")
	}
}

func TestConverter_MissingFileShouldReturnDecodeError(t *testing.T) {
	conv := asciify.NewConverter(asciify.Detailed)

	path := filepath.Join(t.TempDir(), "missing.png")
	_, err := conv.ConvertFile(path, asciify.Options{})
	var decErr *asciify.DecodeError
	if !errors.As(err, &decErr) {
		t.Fatalf("expected a DecodeError, got %v", err)
	}
	if decErr.Source != path {
		t.Fatalf("expected source %q, got %q", path, decErr.Source)
	}
}

func TestConverter_ConvertFileShouldMatchConvertBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradient.png")
	if err := os.WriteFile(path, gradientPNG, 0644); err != nil {
		t.Fatalf("failed writing the fixture: %v", err)
	}
	conv := asciify.NewConverter(asciify.Simple)
	opts := asciify.Options{Width: 32}

	fromFile, err := conv.ConvertFile(path, opts)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	fromReader, err := conv.Convert(bytes.NewReader(gradientPNG), opts)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if fromFile.String() != fromReader.String() {
		t.Fatalf("file and reader sources should produce the same art")
	}
}

func TestConverter_NegativeWidthShouldReturnConfigError(t *testing.T) {
	conv := asciify.NewConverter(asciify.Detailed)

	_, err := conv.ConvertImage(gradientImg, asciify.Options{Width: -5})
	var cfgErr *asciify.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected a ConfigError, got %v", err)
	}
}

func TestConverter_ZeroCharsetShouldFallBackToDetailed(t *testing.T) {
	conv := asciify.NewConverter(asciify.Charset{})
	if conv.Ramp().String() != asciify.CharsDetailed {
		t.Fatalf("expected the detailed ramp, got %q", conv.Ramp().String())
	}
}

func TestConverter_AspectOptionShouldChangeRowCount(t *testing.T) {
	conv := asciify.NewConverter(asciify.Detailed, asciify.WithAspect(1.0))

	art, err := conv.ConvertImage(gradientImg, asciify.Options{Width: 64})
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if art.Height() != 32 {
		t.Fatalf("expected 32 lines, got %d", art.Height())
	}
}

func BenchmarkConverter(b *testing.B) {
	conv := asciify.NewConverter(asciify.Detailed)
	opts := asciify.Options{Width: 120}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := conv.ConvertImage(gradientImg, opts); err != nil {
			b.Fatalf("conversion failed: %v", err)
		}
	}
}
