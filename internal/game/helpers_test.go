package game_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"time"

	"golife/internal/game"
)

type textCall struct {
	text string
	x, y int
}

// recordingDisplay keeps the last value written to every pixel.
type recordingDisplay struct {
	pixels  map[[2]int]bool
	writes  int
	texts   []textCall
	failAt  int
	failErr error
}

func newRecordingDisplay() *recordingDisplay {
	return &recordingDisplay{pixels: map[[2]int]bool{}, failAt: -1}
}

func (d *recordingDisplay) SetPixel(row, col int, on bool) error {
	if d.failAt >= 0 && d.writes == d.failAt {
		return d.failErr
	}
	d.writes++
	d.pixels[[2]int{row, col}] = on
	return nil
}

func (d *recordingDisplay) DrawText(s string, x, y int) error {
	d.texts = append(d.texts, textCall{text: s, x: x, y: y})
	return nil
}

func (d *recordingDisplay) lit() int {
	n := 0
	for _, on := range d.pixels {
		if on {
			n++
		}
	}
	return n
}

// scriptedInput hands out one batch per poll and a quit once exhausted.
type scriptedInput struct {
	batches [][]game.Event
	polls   int
}

func (in *scriptedInput) Poll() []game.Event {
	in.polls++
	if len(in.batches) == 0 {
		return []game.Event{game.Close()}
	}
	batch := in.batches[0]
	in.batches = in.batches[1:]
	return batch
}

type sleepRecorder struct {
	calls []time.Duration
}

func (s *sleepRecorder) sleep(ctx context.Context, d time.Duration) error {
	s.calls = append(s.calls, d)
	return ctx.Err()
}

var errBrokenDisplay = errors.New("display unplugged")

func newController(size int) (*game.Controller, *bytes.Buffer, *sleepRecorder) {
	var buf bytes.Buffer
	rec := &sleepRecorder{}
	c := game.New(game.Options{
		Size:       size,
		TickDelay:  20 * time.Millisecond,
		Scale:      1,
		SplashHold: 3 * time.Second,
		Seed:       42,
		Density:    0.3,
		Logger:     log.New(&buf, "", 0),
		Sleep:      rec.sleep,
	})
	return c, &buf, rec
}
