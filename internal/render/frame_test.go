package render

import (
	"testing"

	"github.com/pkg/errors"

	"golife/internal/config"
	"golife/internal/game"
)

var _ game.Display = (*Frame)(nil)

func TestNewFrameIsOff(t *testing.T) {
	f := NewFrame(8, ThemeByName("oled-white"))
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if f.Lit(row, col) {
				t.Fatalf("pixel (%d,%d) lit on a fresh frame", row, col)
			}
		}
	}
	if len(f.Pix()) != 8*8*4 {
		t.Fatalf("len(pix) = %d", len(f.Pix()))
	}
}

func TestSetPixelMapsRowToY(t *testing.T) {
	theme := ThemeByName("oled-blue")
	f := NewFrame(10, theme)
	if err := f.SetPixel(2, 7, true); err != nil {
		t.Fatal(err)
	}
	if got := f.Image().RGBAAt(7, 2); got != theme.On {
		t.Fatalf("pixel at x=7,y=2 is %v, want %v", got, theme.On)
	}
	if !f.Lit(2, 7) || f.Lit(7, 2) {
		t.Fatal("Lit disagrees with SetPixel")
	}
	if err := f.SetPixel(2, 7, false); err != nil {
		t.Fatal(err)
	}
	if f.Lit(2, 7) {
		t.Fatal("pixel still lit after switching off")
	}
}

func TestSetPixelOutOfRange(t *testing.T) {
	f := NewFrame(4, ThemeByName("mono"))
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if err := f.SetPixel(c[0], c[1], true); !errors.Is(err, ErrPixelRange) {
			t.Fatalf("SetPixel(%d,%d) err = %v", c[0], c[1], err)
		}
	}
}

func TestDrawTextLightsPixels(t *testing.T) {
	f := NewFrame(100, ThemeByName("oled-white"))
	if err := f.DrawText("Game of Life", 8, 55); err != nil {
		t.Fatal(err)
	}
	lit := 0
	for row := 0; row < 100; row++ {
		for col := 0; col < 100; col++ {
			if f.Lit(row, col) {
				lit++
				if row > 55+4 || row < 55-13 {
					t.Fatalf("glyph pixel at row %d far from baseline", row)
				}
			}
		}
	}
	if lit == 0 {
		t.Fatal("DrawText lit no pixels")
	}

	f.Clear()
	for row := 0; row < 100; row++ {
		for col := 0; col < 100; col++ {
			if f.Lit(row, col) {
				t.Fatal("Clear left lit pixels")
			}
		}
	}
}

func TestEveryConfiguredThemeHasColors(t *testing.T) {
	for _, name := range config.Themes {
		th, ok := themes[name]
		if !ok {
			t.Fatalf("theme %q has no colors", name)
		}
		if th.On == th.Off {
			t.Fatalf("theme %q has identical on/off colors", name)
		}
	}
	if ThemeByName("nope").Name != config.DefaultTheme {
		t.Fatal("unknown theme should fall back to the default")
	}
	if Hex(ThemeByName("oled-white").On) != "#ffffff" {
		t.Fatal("unexpected hex formatting")
	}
}
