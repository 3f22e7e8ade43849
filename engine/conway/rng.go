package conway

import "math/rand"

// RNG wraps math/rand.Rand with a visible seed so a random soup can be
// reproduced with "conway preset random <seed>".
type RNG struct {
	seed int64
	src  *rand.Rand
}

// NewRNG creates a deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Chance reports true with probability percent/100.
func (r *RNG) Chance(percent int) bool {
	return r.src.Intn(100) < percent
}

// SoupDensity is the percentage of live cells in a random soup.
const SoupDensity = 30

// Soup fills a fresh width x height game with random cells.
func Soup(width, height int, wrap bool, rng *RNG) *Game {
	g := NewGame(width, height, wrap)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if rng.Chance(SoupDensity) {
				g.SetOn(row, col)
			}
		}
	}
	return g
}
