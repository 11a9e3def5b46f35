package main

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"golife/internal/sweep"
)

var (
	sweepGenerations int
	sweepStride      int
	sweepWorkers     int
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "stamp the spaceship at many origins and report the population after N generations",
		RunE:  runSweep,
	}
	cmd.Flags().IntVar(&sweepGenerations, "generations", 200, "generations per origin")
	cmd.Flags().IntVar(&sweepStride, "stride", 10, "spacing between origins")
	cmd.Flags().IntVar(&sweepWorkers, "workers", runtime.NumCPU(), "number of worker goroutines")
	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	results, err := sweep.Run(cmd.Context(), sweep.Options{
		Size:        cfg.Dimension,
		Generations: sweepGenerations,
		Stride:      sweepStride,
		Workers:     sweepWorkers,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROW\tCOL\tFINAL\tPEAK\tEXTINCT")
	for _, r := range results {
		peak := 0
		for _, p := range r.Population {
			peak = max(peak, p)
		}
		extinct := "-"
		if r.Extinct >= 0 {
			extinct = fmt.Sprint(r.Extinct)
		}
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\n", r.Origin.Row, r.Origin.Col, r.Final(), peak, extinct)
	}
	return w.Flush()
}
