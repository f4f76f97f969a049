package ui

import (
	"strings"

	"github.com/incredimo/mix/engine/colors"
	"github.com/incredimo/mix/engine/gfx/renderer2d"
)

// Theme is the palette, text styles and metrics widgets take their defaults
// from.
type Theme struct {
	Background colors.Color
	Foreground colors.Color
	Primary    colors.Color
	Secondary  colors.Color
	Accent     colors.Color
	Error      colors.Color
	Success    colors.Color
	Warning    colors.Color

	DefaultText renderer2d.TextStyle
	HeadingText renderer2d.TextStyle
	ButtonText  renderer2d.TextStyle

	SpacingSmall  float32
	SpacingMedium float32
	SpacingLarge  float32

	RadiusSmall  float32
	RadiusMedium float32
	RadiusLarge  float32
}

func textStyle(size float32, c colors.Color, align renderer2d.TextAlign) renderer2d.TextStyle {
	st := renderer2d.DefaultTextStyle()
	st.FontSize, st.Color, st.Align = size, c, align
	return st
}

func LightTheme() Theme {
	fg := colors.FromHex(0x000000)
	return Theme{
		Background: colors.FromHex(0xFFFFFF),
		Foreground: fg,
		Primary:    colors.FromHex(0x2196F3),
		Secondary:  colors.FromHex(0x4CAF50),
		Accent:     colors.FromHex(0xFF9800),
		Error:      colors.FromHex(0xF44336),
		Success:    colors.FromHex(0x4CAF50),
		Warning:    colors.FromHex(0xFFC107),

		DefaultText: textStyle(16, fg, renderer2d.TextLeft),
		HeadingText: textStyle(24, fg, renderer2d.TextLeft),
		ButtonText:  textStyle(16, colors.FromHex(0xFFFFFF), renderer2d.TextCenter),

		SpacingSmall:  4,
		SpacingMedium: 8,
		SpacingLarge:  16,

		RadiusSmall:  2,
		RadiusMedium: 4,
		RadiusLarge:  8,
	}
}

// DarkTheme differs from LightTheme only in background and text colors.
func DarkTheme() Theme {
	t := LightTheme()
	fg := colors.FromHex(0xFFFFFF)
	t.Background = colors.FromHex(0x121212)
	t.Foreground = fg
	t.DefaultText.Color = fg
	t.HeadingText.Color = fg
	return t
}

// ThemeByName maps "light" and "dark" (any case). Unknown names get the
// light theme and false.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "light":
		return LightTheme(), true
	case "dark":
		return DarkTheme(), true
	}
	return LightTheme(), false
}
