package main

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"golife/internal/core"
	"golife/internal/game"
	"golife/internal/render"
)

var (
	generations int
	stamps      []string
	randomStart bool
	noPlot      bool
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "evolve a board headlessly and plot its population",
		RunE:  runBatch,
	}
	cmd.Flags().IntVar(&generations, "generations", 100, "generations to evolve")
	cmd.Flags().StringArrayVar(&stamps, "stamp", nil, "stamp the spaceship at row,col (repeatable)")
	cmd.Flags().BoolVar(&randomStart, "random", false, "start from a seeded random board")
	cmd.Flags().BoolVar(&noPlot, "no-plot", false, "print one population per line instead of a plot")
	return cmd
}

// parseStamp parses a "row,col" origin.
func parseStamp(s string) (core.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return core.Coord{}, errors.Errorf("stamp %q: want row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return core.Coord{}, errors.Wrapf(err, "stamp %q: row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return core.Coord{}, errors.Wrapf(err, "stamp %q: col", s)
	}
	return core.Coord{Row: row, Col: col}, nil
}

// countdown quits the controller loop after n polls and samples the
// population on each poll.
type countdown struct {
	ctrl    *game.Controller
	left    int
	samples []float64
}

func (c *countdown) Poll() []game.Event {
	c.samples = append(c.samples, float64(c.ctrl.Grid().Population()))
	c.left--
	if c.left <= 0 {
		return []game.Event{game.Close()}
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	if generations < 1 {
		return errors.Errorf("generations %d must be positive", generations)
	}
	ctrl := game.New(game.Options{
		Size:      cfg.Dimension,
		TickDelay: cfg.TickDelay(),
		Seed:      cfg.Seed,
		Density:   cfg.Density,
		Logger:    log.New(io.Discard, "", 0),
	})
	if randomStart {
		ctrl.Randomize()
	}
	for _, s := range stamps {
		origin, err := parseStamp(s)
		if err != nil {
			return err
		}
		if err := ctrl.StampAt(origin.Row, origin.Col); err != nil {
			return err
		}
	}

	in := &countdown{ctrl: ctrl, left: generations}
	frame := render.NewFrame(cfg.Dimension, render.ThemeByName(cfg.Theme))
	if err := ctrl.Run(cmd.Context(), frame, in); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if noPlot || len(in.samples) < 2 {
		for i, p := range in.samples {
			fmt.Fprintf(out, "%d\t%.0f\n", i+1, p)
		}
		return nil
	}
	fmt.Fprintln(out, asciigraph.Plot(in.samples,
		asciigraph.Height(10),
		asciigraph.Width(min(len(in.samples), 80)),
		asciigraph.Caption(fmt.Sprintf("population over %d generations", ctrl.Generation()))))
	return nil
}
