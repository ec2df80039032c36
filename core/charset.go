package asciify

import "unicode/utf8"

// Character sets ordered from the darkest to the lightest glyph.
const (
	CharsDetailed = "@%#*+=-:. "
	CharsSimple   = "@#*+=-:. "
	CharsBlocks   = "█▓▒░ "
)

// Reserved charset names.
const (
	NameDetailed = "detailed"
	NameSimple   = "simple"
	NameBlocks   = "blocks"
	NameCustom   = "custom"
)

type charsetKind int

const (
	kindDetailed charsetKind = iota
	kindSimple
	kindBlocks
	kindCustom
)

// Ramp is an immutable sequence of glyphs, darkest first.
type Ramp struct {
	glyphs []rune
}

// NewRamp builds a ramp from s. It fails if s is empty or not valid UTF-8.
func NewRamp(s string) (Ramp, error) {
	if s == "" {
		return Ramp{}, &ConfigError{Field: "charset", Value: s, Reason: "ramp must contain at least one character"}
	}
	if !utf8.ValidString(s) {
		return Ramp{}, &ConfigError{Field: "charset", Value: s, Reason: "ramp is not valid UTF-8"}
	}
	return Ramp{glyphs: []rune(s)}, nil
}

func mustRamp(s string) Ramp {
	r, err := NewRamp(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of glyphs in the ramp.
func (r Ramp) Len() int { return len(r.glyphs) }

// At returns the glyph at index i.
func (r Ramp) At(i int) rune { return r.glyphs[i] }

// Reverse returns a new ramp with the glyph order flipped.
// The receiver is left untouched.
func (r Ramp) Reverse() Ramp {
	n := len(r.glyphs)
	rev := make([]rune, n)
	for i, g := range r.glyphs {
		rev[n-1-i] = g
	}
	return Ramp{glyphs: rev}
}

func (r Ramp) String() string { return string(r.glyphs) }

// Charset selects one of the preset ramps or a custom literal one.
type Charset struct {
	kind charsetKind
	ramp Ramp
}

// Preset charsets.
var (
	Detailed = Charset{kind: kindDetailed, ramp: mustRamp(CharsDetailed)}
	Simple   = Charset{kind: kindSimple, ramp: mustRamp(CharsSimple)}
	Blocks   = Charset{kind: kindBlocks, ramp: mustRamp(CharsBlocks)}
)

// Custom returns a charset made of the literal characters in chars,
// ordered darkest to lightest.
func Custom(chars string) (Charset, error) {
	r, err := NewRamp(chars)
	if err != nil {
		return Charset{}, err
	}
	return Charset{kind: kindCustom, ramp: r}, nil
}

// ParseCharset resolves a preset name. Every other string is taken
// verbatim as a custom ramp.
func ParseCharset(s string) (Charset, error) {
	switch s {
	case NameDetailed:
		return Detailed, nil
	case NameSimple:
		return Simple, nil
	case NameBlocks:
		return Blocks, nil
	}
	return Custom(s)
}

// Ramp returns the glyph ramp of the charset.
func (c Charset) Ramp() Ramp { return c.ramp }

// Name returns the preset name, or "custom" for literal ramps.
func (c Charset) Name() string {
	switch c.kind {
	case kindDetailed:
		return NameDetailed
	case kindSimple:
		return NameSimple
	case kindBlocks:
		return NameBlocks
	}
	return NameCustom
}

func (c Charset) String() string {
	if c.kind == kindCustom {
		return NameCustom + "(" + c.ramp.String() + ")"
	}
	return c.Name()
}
