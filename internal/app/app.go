//go:build ebiten

package app

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"golife/internal/config"
	"golife/internal/core"
	"golife/internal/game"
	"golife/internal/render"
	"golife/internal/ui"
)

// Game adapts the controller to the ebiten.Game interface.
type Game struct {
	ctrl    *game.Controller
	frame   *render.Frame
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	step    *core.FixedStep

	scale       int
	splashUntil time.Time
}

// New constructs a Game around ctrl. The splash is drawn immediately and held
// for hold.
func New(ctrl *game.Controller, theme render.Theme, hold time.Duration) (*Game, error) {
	size := ctrl.Grid().Size()
	g := &Game{
		ctrl:        ctrl,
		frame:       render.NewFrame(size, theme),
		painter:     render.NewGridPainter(size),
		overlay:     ui.NewOverlay(ctrl, ctrl.Scale(), theme),
		hud:         ui.NewHUD(ctrl, ui.PanelWidth),
		step:        core.NewFixedStep(ctrl.Delay()),
		scale:       ctrl.Scale(),
		splashUntil: time.Now().Add(hold),
	}
	if err := ctrl.Splash(g.frame); err != nil {
		return nil, err
	}
	return g, nil
}

// Update advances one frame: it ticks when the delay has elapsed, then drains
// the input collected this frame.
func (g *Game) Update() error {
	if time.Now().Before(g.splashUntil) {
		if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		return nil
	}

	g.step.SetInterval(g.ctrl.Delay())
	if g.step.ShouldStep() {
		if err := g.ctrl.Tick(g.frame); err != nil {
			return err
		}
	}

	if g.ctrl.DispatchAll(g.pollEvents()) {
		return ebiten.Termination
	}
	g.overlay.Update()
	g.hud.Update(g.boardWidth())
	return nil
}

// Draw renders the board, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if !time.Now().Before(g.splashUntil) {
		// Edits made between ticks show up right away.
		if err := g.ctrl.Render(g.frame); err != nil {
			log.Printf("draw: %v", err)
		}
	}
	g.painter.Blit(screen, g.frame, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.boardWidth(), g.boardWidth())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.boardWidth() + g.hud.Width(), g.boardWidth()
}

func (g *Game) boardWidth() int {
	return g.ctrl.Grid().Size() * g.scale
}

var keyMap = []struct {
	ebiten ebiten.Key
	key    game.Key
}{
	{ebiten.KeySpace, game.KeySpace},
	{ebiten.KeyTab, game.KeyTab},
	{ebiten.KeyArrowUp, game.KeyUp},
	{ebiten.KeyArrowDown, game.KeyDown},
	{ebiten.KeyArrowLeft, game.KeyLeft},
	{ebiten.KeyArrowRight, game.KeyRight},
	{ebiten.KeyEnter, game.KeyEnter},
	{ebiten.KeyEscape, game.KeyEscape},
	{ebiten.KeyN, game.KeyN},
	{ebiten.KeyR, game.KeyR},
	{ebiten.KeyEqual, game.KeyPlus},
	{ebiten.KeyNumpadAdd, game.KeyPlus},
	{ebiten.KeyMinus, game.KeyMinus},
	{ebiten.KeyNumpadSubtract, game.KeyMinus},
}

// pollEvents collects the input of this frame. Pointer releases over the HUD
// are left to the HUD.
func (g *Game) pollEvents() []game.Event {
	var events []game.Event
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x < g.boardWidth() {
			events = append(events, game.PointerRelease(x, y))
		}
	}
	for _, m := range keyMap {
		if inpututil.IsKeyJustPressed(m.ebiten) {
			events = append(events, game.KeyPress(m.key))
		}
	}
	if ebiten.IsWindowBeingClosed() {
		events = append(events, game.Close())
	}
	return events
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, logger *log.Logger) error {
	ctrl := game.New(game.Options{
		Size:       cfg.Dimension,
		TickDelay:  cfg.TickDelay(),
		Scale:      cfg.Scale,
		SplashHold: cfg.SplashHold(),
		Seed:       cfg.Seed,
		Density:    cfg.Density,
		Logger:     logger,
	})
	g, err := New(ctrl, render.ThemeByName(cfg.Theme), cfg.SplashHold())
	if err != nil {
		return err
	}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowTitle("Conway's Game Of Life")
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
