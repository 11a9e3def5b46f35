// Package render turns controller output into pixels: a themed RGBA frame
// buffer that implements game.Display and, with the ebiten build tag, a
// painter that scales it onto the window.
package render

import (
	"image"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ErrPixelRange is returned for writes outside the frame.
var ErrPixelRange = errors.New("render: pixel out of range")

// Frame is a square one-pixel-per-cell RGBA surface. Row maps to y and col to
// x.
type Frame struct {
	size  int
	theme Theme
	img   *image.RGBA
}

// NewFrame allocates a frame cleared to the theme's off color.
func NewFrame(size int, theme Theme) *Frame {
	if size <= 0 {
		size = 1
	}
	f := &Frame{size: size, theme: theme, img: image.NewRGBA(image.Rect(0, 0, size, size))}
	f.Clear()
	return f
}

// Size returns the side length in pixels.
func (f *Frame) Size() int { return f.size }

// Theme returns the color scheme.
func (f *Frame) Theme() Theme { return f.theme }

// Image exposes the backing image.
func (f *Frame) Image() *image.RGBA { return f.img }

// Pix exposes the raw RGBA bytes in row-major order.
func (f *Frame) Pix() []byte { return f.img.Pix }

// Clear paints the whole frame with the off color.
func (f *Frame) Clear() { fillRGBA(f.img.Pix, f.theme.Off) }

// SetPixel paints (row, col) with the on or off color.
func (f *Frame) SetPixel(row, col int, on bool) error {
	if row < 0 || row >= f.size || col < 0 || col >= f.size {
		return errors.Wrapf(ErrPixelRange, "(%d,%d) in %dx%d frame", row, col, f.size, f.size)
	}
	c := f.theme.Off
	if on {
		c = f.theme.On
	}
	putRGBA(f.img.Pix, row*f.size+col, c)
	return nil
}

// Lit reports whether (row, col) currently shows the on color.
func (f *Frame) Lit(row, col int) bool {
	if row < 0 || row >= f.size || col < 0 || col >= f.size {
		return false
	}
	return pixelIs(f.img.Pix, row*f.size+col, f.theme.On)
}

// DrawText rasterizes s in the on color with its baseline starting at (x, y).
// Glyphs falling outside the frame are clipped.
func (f *Frame) DrawText(s string, x, y int) error {
	d := &font.Drawer{
		Dst:  f.img,
		Src:  image.NewUniform(f.theme.On),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
	return nil
}
