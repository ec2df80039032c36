package asciify

import (
	"io"
	"strings"
)

// Art is the text rendering of an image. Every line has the same number
// of glyphs.
type Art struct {
	lines []string
	width int
}

// newArt splits glyphs into lines of width runes each.
func newArt(glyphs []rune, width int) Art {
	lines := make([]string, 0, len(glyphs)/width)
	for i := 0; i < len(glyphs); i += width {
		lines = append(lines, string(glyphs[i:i+width]))
	}
	return Art{lines: lines, width: width}
}

// Width returns the number of glyphs per line.
func (a Art) Width() int { return a.width }

// Height returns the number of lines.
func (a Art) Height() int { return len(a.lines) }

// Empty reports whether the art holds no lines.
func (a Art) Empty() bool { return len(a.lines) == 0 }

// Lines returns a copy of the lines, without line terminators.
func (a Art) Lines() []string {
	out := make([]string, len(a.lines))
	copy(out, a.lines)
	return out
}

// String returns the art with every line, including the last one,
// terminated by a newline.
func (a Art) String() string {
	var b strings.Builder
	for _, l := range a.lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes the art text to w.
func (a Art) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String())
	return int64(n), err
}
