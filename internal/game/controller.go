// Package game holds the interaction controller: it owns the board, the
// play/pause mode and the keyboard cursor, turns input events into board edits
// and drives the render/evolve/sleep/poll loop.
package game

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"golife/internal/core"
	"golife/internal/life"
)

// ErrRender matches every failure reported by a Display. The display's own
// error stays reachable through errors.Unwrap.
var ErrRender = errors.New("game: render failed")

type renderError struct {
	what  string
	cause error
}

func (e *renderError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrRender, e.what, e.cause)
}

func (e *renderError) Is(target error) bool { return target == ErrRender }

func (e *renderError) Unwrap() error { return e.cause }

// Mode is the playback state of the controller.
type Mode int

const (
	// Running evolves the board on every tick.
	Running Mode = iota
	// Paused keeps rendering but leaves the board alone.
	Paused
)

func (m Mode) String() string {
	if m == Paused {
		return "paused"
	}
	return "running"
}

const (
	// MinDelay and MaxDelay bound the tick delay.
	MinDelay = time.Millisecond
	MaxDelay = time.Second
	// DelayStep is how much one faster/slower key press changes the delay.
	DelayStep = 5 * time.Millisecond

	// TitleGlyphWidth is the advance of the splash font in display pixels.
	TitleGlyphWidth = 7
)

// Options configures a Controller.
type Options struct {
	Size       int
	TickDelay  time.Duration
	Scale      int
	SplashHold time.Duration
	Seed       int64
	Density    float64
	Logger     *log.Logger
	// Sleep blocks for d or until ctx is done. Defaults to a timer wait.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Controller is the single owner of the board. It is not safe for concurrent
// use; every call is expected to come from one loop.
type Controller struct {
	grid       *core.Grid
	mode       Mode
	cursor     core.Coord
	delay      time.Duration
	scale      int
	splashHold time.Duration
	generation int
	seed       int64
	density    float64
	quit       bool

	logger *log.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// New returns a running controller with an all-dead board and the cursor at
// the origin.
func New(opts Options) *Controller {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr, "game: ", log.LstdFlags)
	}
	if opts.Sleep == nil {
		opts.Sleep = sleepContext
	}
	return &Controller{
		grid:       core.NewGrid(opts.Size),
		mode:       Running,
		delay:      clampDelay(opts.TickDelay),
		scale:      opts.Scale,
		splashHold: opts.SplashHold,
		seed:       opts.Seed,
		density:    opts.Density,
		logger:     opts.Logger,
		sleep:      opts.Sleep,
	}
}

// Grid returns the current generation.
func (c *Controller) Grid() *core.Grid { return c.grid }

// Mode returns the playback mode.
func (c *Controller) Mode() Mode { return c.mode }

// Paused reports whether evolution is suspended.
func (c *Controller) Paused() bool { return c.mode == Paused }

// Cursor returns the keyboard cursor position.
func (c *Controller) Cursor() core.Coord { return c.cursor }

// Delay returns the pause between generations.
func (c *Controller) Delay() time.Duration { return c.delay }

// Generation returns the number of generations since start or the last clear.
func (c *Controller) Generation() int { return c.generation }

// Scale returns the number of display pixels per cell used to map pointer
// positions.
func (c *Controller) Scale() int { return c.scale }

// Done reports whether a quit has been requested.
func (c *Controller) Done() bool { return c.quit }

// TogglePause flips between Running and Paused.
func (c *Controller) TogglePause() {
	if c.mode == Paused {
		c.mode = Running
		return
	}
	c.mode = Paused
}

// ClearGrid kills every cell. The mode is left alone.
func (c *Controller) ClearGrid() {
	c.grid.Clear()
	c.generation = 0
}

// MoveCursor shifts the cursor one cell. Moves past an edge are ignored.
func (c *Controller) MoveCursor(d Direction) {
	var delta core.Coord
	switch d {
	case Up:
		delta = core.Coord{Row: -1}
	case Down:
		delta = core.Coord{Row: 1}
	case Left:
		delta = core.Coord{Col: -1}
	case Right:
		delta = core.Coord{Col: 1}
	default:
		return
	}
	c.cursor = c.cursor.Add(delta).Clamp(c.grid.Size())
}

// ConfirmAtCursor toggles the cell under the cursor.
func (c *Controller) ConfirmAtCursor() error {
	_, err := c.grid.Toggle(c.cursor.Row, c.cursor.Col)
	return errors.Wrap(err, "confirm at cursor")
}

// StampAt places the spaceship pattern with its origin at (row, col).
func (c *Controller) StampAt(row, col int) error {
	return errors.Wrapf(life.Stamp(c.grid, row, col), "stamp at (%d,%d)", row, col)
}

// StepOnce advances one generation regardless of the mode.
func (c *Controller) StepOnce() {
	c.grid = life.Evolve(c.grid)
	c.generation++
}

// Randomize refills the board from the controller's seed and advances the
// seed so the next call produces a different board.
func (c *Controller) Randomize() {
	life.Seed(c.grid, c.seed, c.density)
	c.seed++
	c.generation = 0
}

// AdjustDelay changes the tick delay by delta, clamped to [MinDelay, MaxDelay].
func (c *Controller) AdjustDelay(delta time.Duration) {
	c.delay = clampDelay(c.delay + delta)
}

// PixelToCell maps a display pixel to the cell under it.
func (c *Controller) PixelToCell(x, y int) (row, col int) {
	return floorDiv(y, c.scale), floorDiv(x, c.scale)
}

// Dispatch applies one event. Edits that address cells outside the board are
// logged and dropped. It reports whether the loop should stop.
func (c *Controller) Dispatch(ev Event) bool {
	switch ev.Kind {
	case EventClose:
		c.quit = true
	case EventPointerRelease:
		row, col := c.PixelToCell(ev.X, ev.Y)
		c.report(c.StampAt(row, col))
	case EventKeyPress:
		c.handleKey(ev.Key)
	}
	return c.quit
}

// DispatchAll applies events in order and stops at the first quit; events
// after it are discarded.
func (c *Controller) DispatchAll(events []Event) bool {
	for _, ev := range events {
		if c.Dispatch(ev) {
			return true
		}
	}
	return c.quit
}

func (c *Controller) handleKey(k Key) {
	switch k {
	case KeySpace:
		c.TogglePause()
	case KeyTab:
		c.ClearGrid()
	case KeyUp:
		c.MoveCursor(Up)
	case KeyDown:
		c.MoveCursor(Down)
	case KeyLeft:
		c.MoveCursor(Left)
	case KeyRight:
		c.MoveCursor(Right)
	case KeyEnter:
		c.report(c.ConfirmAtCursor())
	case KeyEscape:
		c.quit = true
	case KeyN:
		c.StepOnce()
	case KeyR:
		c.Randomize()
	case KeyPlus:
		c.AdjustDelay(-DelayStep)
	case KeyMinus:
		c.AdjustDelay(DelayStep)
	}
}

func (c *Controller) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, core.ErrOutOfBounds) {
		c.logger.Printf("ignored edit: %v", err)
		return
	}
	c.logger.Printf("edit failed: %v", err)
}

// Render writes every cell of the current generation to d.
func (c *Controller) Render(d Display) error {
	size := c.grid.Size()
	cells := c.grid.Cells()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if err := d.SetPixel(row, col, cells[row*size+col] == core.Alive); err != nil {
				return &renderError{what: fmt.Sprintf("pixel (%d,%d)", row, col), cause: err}
			}
		}
	}
	return nil
}

// Tick renders the board and, when running, replaces it with the next
// generation.
func (c *Controller) Tick(d Display) error {
	if err := c.Render(d); err != nil {
		return err
	}
	if c.mode == Running {
		c.grid = life.Evolve(c.grid)
		c.generation++
	}
	return nil
}

// Splash draws the two title lines around the middle of the board.
func (c *Controller) Splash(d Display) error {
	mid := c.grid.Size() / 2
	lines := []struct {
		text string
		dy   int
	}{
		{"Conway's", -10},
		{"Game of Life", 5},
	}
	for _, l := range lines {
		x := mid - len(l.text)*TitleGlyphWidth/2
		if err := d.DrawText(l.text, x, mid+l.dy); err != nil {
			return &renderError{what: fmt.Sprintf("title %q", l.text), cause: err}
		}
	}
	return nil
}

// Run shows the splash, holds it, then loops: tick, sleep for the current
// delay, drain input. It returns nil on quit or when ctx is done and a wrapped
// ErrRender if the display fails.
func (c *Controller) Run(ctx context.Context, d Display, in Input) error {
	if err := c.Splash(d); err != nil {
		return err
	}
	if err := c.sleep(ctx, c.splashHold); err != nil {
		return nil
	}
	for {
		if err := c.Tick(d); err != nil {
			return err
		}
		if err := c.sleep(ctx, c.delay); err != nil {
			return nil
		}
		if c.DispatchAll(in.Poll()) {
			return nil
		}
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func clampDelay(d time.Duration) time.Duration {
	if d < MinDelay {
		return MinDelay
	}
	if d > MaxDelay {
		return MaxDelay
	}
	return d
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
