package colors

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is straight (non-premultiplied) RGBA in [0..1].
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Magenta     = Color{1, 0, 1, 1}
	Cyan        = Color{0, 1, 1, 1}
	Yellow      = Color{1, 1, 0, 1}
	Gray        = Color{0.5, 0.5, 0.5, 1}
	DarkGray    = Color{0.08, 0.10, 0.12, 1}
	Transparent = Color{0, 0, 0, 0}
)

func RGB(r, g, b float32) Color     { return Color{r, g, b, 1} }
func RGBA(r, g, b, a float32) Color { return Color{r, g, b, a} }

// FromHex builds an opaque color from 0xRRGGBB.
func FromHex(hex uint32) Color {
	return Color{
		float32((hex>>16)&0xFF) / 255,
		float32((hex>>8)&0xFF) / 255,
		float32(hex&0xFF) / 255,
		1,
	}
}

// ParseHex parses "#RRGGBB" (or the short "#RGB" form).
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{float32(c.R), float32(c.G), float32(c.B), 1}, nil
}

func (c Color) R() float32 { return c[0] }
func (c Color) G() float32 { return c[1] }
func (c Color) B() float32 { return c[2] }
func (c Color) A() float32 { return c[3] }

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// Lighten adds d to each RGB channel, clamped to 1.
func (c Color) Lighten(d float32) Color {
	for i := 0; i < 3; i++ {
		c[i] = math32.Min(c[i]+d, 1)
	}
	return c
}

// Darken subtracts d from each RGB channel, clamped to 0.
func (c Color) Darken(d float32) Color {
	for i := 0; i < 3; i++ {
		c[i] = math32.Max(c[i]-d, 0)
	}
	return c
}

// Hex formats the RGB channels as "#rrggbb".
func (c Color) Hex() string {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}.Clamped().Hex()
}

// UnmarshalText accepts "#RRGGBB" so colors can be written as strings in config files.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

func (c Color) Array() [4]float32 { return c }
