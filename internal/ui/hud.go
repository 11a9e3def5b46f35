//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"golife/internal/game"
)

// HUD renders the status panel to the right of the board.
type HUD struct {
	ctrl         *game.Controller
	width        int
	panel        *ebiten.Image
	panelOffsetX int

	slower image.Rectangle
	faster image.Rectangle
}

// NewHUD constructs a HUD for the controller and panel width.
func NewHUD(ctrl *game.Controller, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{ctrl: ctrl, width: width}
	h.layout()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update handles clicks on the delay buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	switch {
	case pointInRect(px, my, h.slower):
		h.ctrl.AdjustDelay(game.DelayStep)
	case pointInRect(px, my, h.faster):
		h.ctrl.AdjustDelay(-game.DelayStep)
	}
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Game of Life", face, panelPadding, y, headerColor)

	grid := h.ctrl.Grid()
	cur := h.ctrl.Cursor()
	lines := []string{
		fmt.Sprintf("mode  %s", h.ctrl.Mode()),
		fmt.Sprintf("gen   %d", h.ctrl.Generation()),
		fmt.Sprintf("pop   %d", grid.Population()),
		fmt.Sprintf("size  %dx%d", grid.Size(), grid.Size()),
		fmt.Sprintf("cur   %d,%d", cur.Row, cur.Col),
	}
	for _, l := range lines {
		y += lineHeight
		text.Draw(h.panel, l, face, panelPadding, y, textColor)
	}

	text.Draw(h.panel, fmt.Sprintf("delay %dms", h.ctrl.Delay().Milliseconds()), face, panelPadding, h.slower.Min.Y+labelBaseline, textColor)
	h.drawButton(h.slower, "-", h.ctrl.Delay() < game.MaxDelay)
	h.drawButton(h.faster, "+", h.ctrl.Delay() > game.MinDelay)

	keysY := h.slower.Max.Y + lineHeight
	for _, k := range keyHelp {
		text.Draw(h.panel, k, face, panelPadding, keysY, mutedColor)
		keysY += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	top := panelPadding + headerBaseline + 6*lineHeight
	h.faster = image.Rect(h.width-panelPadding-buttonSize, top, h.width-panelPadding, top+buttonSize)
	h.slower = image.Rect(h.faster.Min.X-buttonGap-buttonSize, top, h.faster.Min.X-buttonGap, top+buttonSize)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

var keyHelp = []string{
	"space  pause",
	"tab    clear",
	"arrows cursor",
	"enter  toggle",
	"click  stamp",
	"n step  r random",
	"esc    quit",
}

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	// PanelWidth is the default HUD width in pixels.
	PanelWidth = 160

	panelPadding   = 12
	lineHeight     = 18
	buttonSize     = 20
	buttonGap      = 6
	headerBaseline = 14
	labelBaseline  = 15
)
