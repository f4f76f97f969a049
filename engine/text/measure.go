package text

import "github.com/incredimo/mix/engine/geom"

// Face is what measuring and glyph layout need from a font.
type Face interface {
	Glyph(r rune) (Glyph, bool)
	Metrics() Metrics
}

// DefaultLineHeight is the line advance as a multiple of the font size.
const DefaultLineHeight = 1.2

// FallbackAdvance is the advance used for codepoints a face lacks (or with no
// face at all), as a multiple of the font size.
const FallbackAdvance = 0.5

// Kerner is implemented by faces with pair kerning.
type Kerner interface {
	Kern(a, b rune) float32
}

// Kern is the extra advance between a and b at fontSize. Faces without
// kerning, or a zero a, give 0.
func Kern(f Face, a, b rune, fontSize float32) float32 {
	k, ok := f.(Kerner)
	if !ok || a == 0 {
		return 0
	}
	px := f.Metrics().SizePx
	if px <= 0 {
		return 0
	}
	return k.Kern(a, b) * fontSize / px
}

// Advance is r's advance at fontSize.
func Advance(f Face, r rune, fontSize float32) float32 {
	if f != nil {
		if g, ok := f.Glyph(r); ok {
			if px := f.Metrics().SizePx; px > 0 {
				return g.Advance * fontSize / px
			}
		}
	}
	return fontSize * FallbackAdvance
}

// Measure returns the extent of s at fontSize: the widest line by the number
// of lines times fontSize*lineHeight. Pair kerning applies within a line. f
// may be nil.
func Measure(f Face, s string, fontSize, lineHeight float32) geom.Vec2 {
	if lineHeight <= 0 {
		lineHeight = DefaultLineHeight
	}
	var width, line float32
	var prev rune
	lines := 1
	for _, r := range s {
		if r == '\n' {
			width = max(width, line)
			line, prev = 0, 0
			lines++
			continue
		}
		line += Kern(f, prev, r, fontSize) + Advance(f, r, fontSize)
		prev = r
	}
	width = max(width, line)
	return geom.V2(width, float32(lines)*fontSize*lineHeight)
}
