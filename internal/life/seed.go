package life

import (
	"github.com/aquilax/go-perlin"

	"golife/internal/core"
)

const (
	noiseAlpha  = 2.0
	noiseBeta   = 2.0
	noiseOctave = 3
	noiseScale  = 0.12
	noiseJitter = 0.25
)

// Seed replaces the contents of g with a noise-shaped random fill. Roughly
// density of the cells end up alive; the same seed always yields the same
// board.
func Seed(g *core.Grid, seed int64, density float64) {
	g.Clear()
	if density <= 0 {
		return
	}
	noise := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	rng := core.NewRNG(seed)
	cells := g.Cells()
	size := g.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			// Noise2D is roughly in [-1, 1]; shift into [0, 1].
			n := noise.Noise2D(float64(col)*noiseScale, float64(row)*noiseScale)*0.5 + 0.5
			p := density * (1 - noiseJitter + 2*noiseJitter*n)
			if rng.Chance(p) {
				cells[row*size+col] = core.Alive
			}
		}
	}
}
