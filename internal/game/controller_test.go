package game_test

import (
	"bytes"
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"golife/internal/core"
	"golife/internal/game"
)

var _ = Describe("Controller", func() {
	var (
		ctrl *game.Controller
		logs *bytes.Buffer
		rec  *sleepRecorder
	)

	BeforeEach(func() {
		ctrl, logs, rec = newController(100)
	})

	Describe("initial state", func() {
		It("starts running with an empty board and the cursor at the origin", func() {
			Expect(ctrl.Mode()).To(Equal(game.Running))
			Expect(ctrl.Cursor()).To(Equal(core.Coord{}))
			Expect(ctrl.Grid().Size()).To(Equal(100))
			Expect(ctrl.Grid().Population()).To(BeZero())
			Expect(ctrl.Delay()).To(Equal(20 * time.Millisecond))
			Expect(ctrl.Done()).To(BeFalse())
		})
	})

	Describe("toggle_pause", func() {
		It("returns to the original mode after two toggles without touching the board", func() {
			Expect(ctrl.StampAt(10, 10)).To(Succeed())
			before := ctrl.Grid().Clone()

			ctrl.TogglePause()
			Expect(ctrl.Paused()).To(BeTrue())
			ctrl.TogglePause()
			Expect(ctrl.Mode()).To(Equal(game.Running))
			Expect(ctrl.Grid().Equal(before)).To(BeTrue())
		})

		It("is bound to the space key", func() {
			ctrl.Dispatch(game.KeyPress(game.KeySpace))
			Expect(ctrl.Paused()).To(BeTrue())
		})
	})

	Describe("clear_grid", func() {
		It("kills every cell and keeps the mode", func() {
			ctrl.TogglePause()
			Expect(ctrl.StampAt(10, 10)).To(Succeed())
			ctrl.Dispatch(game.KeyPress(game.KeyTab))
			Expect(ctrl.Grid().Population()).To(BeZero())
			Expect(ctrl.Paused()).To(BeTrue())
			Expect(ctrl.Generation()).To(BeZero())
		})
	})

	Describe("move_cursor", func() {
		It("does not move past the top or left edge", func() {
			ctrl.MoveCursor(game.Up)
			Expect(ctrl.Cursor()).To(Equal(core.Coord{}))
			ctrl.MoveCursor(game.Left)
			Expect(ctrl.Cursor()).To(Equal(core.Coord{}))
		})

		It("does not move past the bottom or right edge", func() {
			for i := 0; i < 150; i++ {
				ctrl.MoveCursor(game.Down)
				ctrl.MoveCursor(game.Right)
			}
			Expect(ctrl.Cursor()).To(Equal(core.Coord{Row: 99, Col: 99}))
		})

		It("maps arrow keys to directions", func() {
			ctrl.DispatchAll([]game.Event{
				game.KeyPress(game.KeyDown),
				game.KeyPress(game.KeyDown),
				game.KeyPress(game.KeyRight),
				game.KeyPress(game.KeyUp),
			})
			Expect(ctrl.Cursor()).To(Equal(core.Coord{Row: 1, Col: 1}))
			ctrl.Dispatch(game.KeyPress(game.KeyLeft))
			Expect(ctrl.Cursor()).To(Equal(core.Coord{Row: 1, Col: 0}))
		})
	})

	Describe("confirm_at_cursor", func() {
		It("toggles the cell under the cursor and back", func() {
			ctrl.MoveCursor(game.Down)
			ctrl.MoveCursor(game.Right)

			Expect(ctrl.ConfirmAtCursor()).To(Succeed())
			Expect(ctrl.Grid().Alive(1, 1)).To(BeTrue())

			ctrl.Dispatch(game.KeyPress(game.KeyEnter))
			Expect(ctrl.Grid().Alive(1, 1)).To(BeFalse())
			Expect(ctrl.Grid().Population()).To(BeZero())
		})
	})

	Describe("stamp_at", func() {
		It("stamps the pattern where the pointer is released", func() {
			Expect(ctrl.Dispatch(game.PointerRelease(10, 20))).To(BeFalse())
			Expect(ctrl.Grid().Population()).To(Equal(9))
			Expect(ctrl.Grid().Alive(20, 10)).To(BeTrue())
		})

		It("rejects origins on the edge without mutating the board", func() {
			err := ctrl.StampAt(0, 10)
			Expect(err).To(MatchError(core.ErrOutOfBounds))
			Expect(ctrl.Grid().Population()).To(BeZero())
		})

		It("logs and ignores out-of-range pointer releases", func() {
			Expect(ctrl.Dispatch(game.PointerRelease(99, 99))).To(BeFalse())
			Expect(ctrl.Dispatch(game.PointerRelease(-3, 5))).To(BeFalse())
			Expect(ctrl.Grid().Population()).To(BeZero())
			Expect(logs.String()).To(ContainSubstring("ignored edit"))
		})

		It("divides pointer coordinates by the display scale", func() {
			scaled := game.New(game.Options{Size: 50, Scale: 4})
			row, col := scaled.PixelToCell(41, 83)
			Expect(row).To(Equal(20))
			Expect(col).To(Equal(10))
			row, col = scaled.PixelToCell(-1, -4)
			Expect(row).To(Equal(-1))
			Expect(col).To(Equal(-1))
		})
	})

	Describe("quit", func() {
		It("stops on escape and discards the rest of the batch", func() {
			quit := ctrl.DispatchAll([]game.Event{
				game.KeyPress(game.KeyDown),
				game.KeyPress(game.KeyEscape),
				game.KeyPress(game.KeyDown),
			})
			Expect(quit).To(BeTrue())
			Expect(ctrl.Done()).To(BeTrue())
			Expect(ctrl.Cursor()).To(Equal(core.Coord{Row: 1}))
		})

		It("stops on window close", func() {
			Expect(ctrl.Dispatch(game.Close())).To(BeTrue())
		})
	})

	Describe("tick", func() {
		It("renders every cell and then evolves while running", func() {
			Expect(ctrl.StampAt(10, 10)).To(Succeed())
			d := newRecordingDisplay()

			Expect(ctrl.Tick(d)).To(Succeed())
			Expect(d.writes).To(Equal(100 * 100))
			Expect(d.lit()).To(Equal(9))
			Expect(d.pixels[[2]int{10, 10}]).To(BeTrue())
			Expect(ctrl.Generation()).To(Equal(1))
		})

		It("does not evolve while paused", func() {
			Expect(ctrl.StampAt(10, 10)).To(Succeed())
			before := ctrl.Grid().Clone()
			ctrl.TogglePause()

			Expect(ctrl.Tick(newRecordingDisplay())).To(Succeed())
			Expect(ctrl.Grid().Equal(before)).To(BeTrue())
			Expect(ctrl.Generation()).To(BeZero())
		})

		It("single-steps on N even while paused", func() {
			ctrl.TogglePause()
			Expect(ctrl.StampAt(10, 10)).To(Succeed())
			before := ctrl.Grid().Clone()
			ctrl.Dispatch(game.KeyPress(game.KeyN))
			Expect(ctrl.Grid().Equal(before)).To(BeFalse())
			Expect(ctrl.Generation()).To(Equal(1))
		})

		It("reports display failures as render errors", func() {
			d := newRecordingDisplay()
			d.failAt = 5
			d.failErr = errBrokenDisplay
			err := ctrl.Tick(d)
			Expect(err).To(MatchError(game.ErrRender))
			Expect(err).To(MatchError(errBrokenDisplay))
			Expect(err.Error()).To(ContainSubstring("display unplugged"))
		})
	})

	Describe("delay", func() {
		It("speeds up on + and slows down on -, within bounds", func() {
			ctrl.Dispatch(game.KeyPress(game.KeyPlus))
			Expect(ctrl.Delay()).To(Equal(15 * time.Millisecond))
			ctrl.Dispatch(game.KeyPress(game.KeyMinus))
			ctrl.Dispatch(game.KeyPress(game.KeyMinus))
			Expect(ctrl.Delay()).To(Equal(25 * time.Millisecond))

			for i := 0; i < 20; i++ {
				ctrl.AdjustDelay(-game.DelayStep)
			}
			Expect(ctrl.Delay()).To(Equal(game.MinDelay))
			ctrl.AdjustDelay(time.Hour)
			Expect(ctrl.Delay()).To(Equal(game.MaxDelay))
		})
	})

	Describe("randomize", func() {
		It("fills the board and produces a new board on each press", func() {
			ctrl.Dispatch(game.KeyPress(game.KeyR))
			first := ctrl.Grid().Clone()
			Expect(first.Population()).To(BeNumerically(">", 0))

			ctrl.Dispatch(game.KeyPress(game.KeyR))
			Expect(ctrl.Grid().Equal(first)).To(BeFalse())
		})
	})

	Describe("splash", func() {
		It("draws both title lines around the middle", func() {
			d := newRecordingDisplay()
			Expect(ctrl.Splash(d)).To(Succeed())
			Expect(d.texts).To(HaveLen(2))
			Expect(d.texts[0].text).To(Equal("Conway's"))
			Expect(d.texts[0].y).To(Equal(40))
			Expect(d.texts[1].text).To(Equal("Game of Life"))
			Expect(d.texts[1].y).To(Equal(55))
			Expect(d.texts[1].x).To(Equal(50 - 12*game.TitleGlyphWidth/2))
		})
	})

	Describe("run", func() {
		It("holds the splash, then ticks and sleeps until quit", func() {
			in := &scriptedInput{batches: [][]game.Event{
				{game.KeyPress(game.KeySpace)},
				nil,
			}}
			d := newRecordingDisplay()

			Expect(ctrl.Run(context.Background(), d, in)).To(Succeed())
			Expect(d.texts).To(HaveLen(2))
			Expect(rec.calls).To(Equal([]time.Duration{
				3 * time.Second,
				20 * time.Millisecond,
				20 * time.Millisecond,
				20 * time.Millisecond,
			}))
			Expect(in.polls).To(Equal(3))
			Expect(ctrl.Done()).To(BeTrue())
			Expect(ctrl.Paused()).To(BeTrue())
			Expect(ctrl.Generation()).To(Equal(1))
		})

		It("stops when the context is cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			in := &scriptedInput{}
			Expect(ctrl.Run(ctx, newRecordingDisplay(), in)).To(Succeed())
			Expect(in.polls).To(BeZero())
		})

		It("returns render failures", func() {
			d := newRecordingDisplay()
			d.failAt = 0
			d.failErr = errBrokenDisplay
			err := ctrl.Run(context.Background(), d, &scriptedInput{})
			Expect(err).To(MatchError(game.ErrRender))
			Expect(err).To(MatchError(errBrokenDisplay))
		})
	})
})
