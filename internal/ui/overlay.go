//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"golife/internal/game"
	"golife/internal/render"
)

// Overlay draws the keyboard cursor and a pause banner on top of the board.
type Overlay struct {
	ctrl       *game.Controller
	scale      int
	accent     color.RGBA
	showCursor bool
}

// NewOverlay constructs an overlay for the controller's board.
func NewOverlay(ctrl *game.Controller, scale int, theme render.Theme) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{ctrl: ctrl, scale: scale, accent: theme.Accent, showCursor: true}
}

// Update toggles the cursor box with C.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		o.showCursor = !o.showCursor
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	s := float32(o.scale)
	if o.showCursor {
		cur := o.ctrl.Cursor()
		stroke := float32(1)
		if o.scale >= 4 {
			stroke = 2
		}
		vector.StrokeRect(screen, float32(cur.Col)*s, float32(cur.Row)*s, s, s, stroke, o.accent, false)
	}
	if o.ctrl.Paused() {
		text.Draw(screen, "PAUSED", basicfont.Face7x13, 4, 14, o.accent)
	}
}
