// Package sweep stamps the spaceship at many origins, evolves each board on
// its own goroutine and reports how the population developed.
package sweep

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"golife/internal/core"
	"golife/internal/life"
)

// Options configures a sweep.
type Options struct {
	Size        int
	Generations int
	// Stride is the spacing between tried origins along each axis.
	Stride  int
	Workers int
}

// Result is the outcome for one origin.
type Result struct {
	Origin core.Coord
	// Population holds the live count after each generation, starting with
	// the stamped board.
	Population []int
	// Extinct is the first generation with no live cells, or -1.
	Extinct int
}

// Final returns the population after the last generation.
func (r Result) Final() int { return r.Population[len(r.Population)-1] }

// Origins lists the valid stamp origins on a stride-spaced lattice.
func Origins(size, stride int) []core.Coord {
	if stride <= 0 {
		stride = 1
	}
	var out []core.Coord
	for row := 1; row < size; row += stride {
		for col := 1; col < size; col += stride {
			if life.CanStamp(size, row, col) {
				out = append(out, core.Coord{Row: row, Col: col})
			}
		}
	}
	return out
}

// Run evaluates every origin. Each result sits at the index of its origin in
// Origins, so the slice is in row-major order.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Generations < 0 {
		return nil, errors.Errorf("sweep: generations %d must not be negative", opts.Generations)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	origins := Origins(opts.Size, opts.Stride)
	results := make([]Result, len(origins))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Workers)
	for i, origin := range origins {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := evaluate(opts.Size, origin, opts.Generations)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "sweep")
	}
	return results, nil
}

func evaluate(size int, origin core.Coord, generations int) (Result, error) {
	g := core.NewGrid(size)
	if err := life.Stamp(g, origin.Row, origin.Col); err != nil {
		return Result{}, err
	}
	res := Result{Origin: origin, Extinct: -1, Population: make([]int, 0, generations+1)}
	res.Population = append(res.Population, g.Population())
	for gen := 1; gen <= generations; gen++ {
		g = life.Evolve(g)
		pop := g.Population()
		res.Population = append(res.Population, pop)
		if pop == 0 && res.Extinct < 0 {
			res.Extinct = gen
		}
	}
	return res, nil
}
