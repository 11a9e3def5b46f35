package render

import (
	"fmt"
	"image/color"

	"golife/internal/config"
)

// Theme is a two-color display scheme plus an accent for overlays.
type Theme struct {
	Name   string
	On     color.RGBA
	Off    color.RGBA
	Accent color.RGBA
}

var themes = map[string]Theme{
	"oled-blue": {
		Name:   "oled-blue",
		On:     color.RGBA{R: 0x5f, G: 0xc5, B: 0xff, A: 0xff},
		Off:    color.RGBA{R: 0x00, G: 0x0a, B: 0x1a, A: 0xff},
		Accent: color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
	},
	"oled-white": {
		Name:   "oled-white",
		On:     color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Off:    color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Accent: color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff},
	},
	"lcd-green": {
		Name:   "lcd-green",
		On:     color.RGBA{R: 0x2a, G: 0x3b, B: 0x14, A: 0xff},
		Off:    color.RGBA{R: 0xbc, G: 0xd7, B: 0x7a, A: 0xff},
		Accent: color.RGBA{R: 0x8b, G: 0x00, B: 0x00, A: 0xff},
	},
	"lcd-blue": {
		Name:   "lcd-blue",
		On:     color.RGBA{R: 0xe6, G: 0xee, B: 0xff, A: 0xff},
		Off:    color.RGBA{R: 0x1e, G: 0x5a, B: 0xd2, A: 0xff},
		Accent: color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff},
	},
	"lcd-white": {
		Name:   "lcd-white",
		On:     color.RGBA{R: 0x28, G: 0x28, B: 0x28, A: 0xff},
		Off:    color.RGBA{R: 0xf0, G: 0xf0, B: 0xeb, A: 0xff},
		Accent: color.RGBA{R: 0x00, G: 0x66, B: 0xcc, A: 0xff},
	},
	"mono": {
		Name:   "mono",
		On:     color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Off:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Accent: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	},
}

// ThemeByName looks up a theme, falling back to the default theme for
// unknown names.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[config.DefaultTheme]
}

// Hex formats c as #rrggbb.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
