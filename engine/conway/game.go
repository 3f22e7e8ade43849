// Package conway implements Conway's Game of Life on a bounded grid and
// the cancellable timer that plays it.
package conway

import "strings"

// Cell glyphs used by Rows.
const (
	AliveGlyph = '#'
	DeadGlyph  = '.'
)

// Game is a double-buffered Life grid. Coordinates are (row, col) with
// row 0 at the top. Not safe for concurrent use; Board adds locking.
type Game struct {
	width, height int
	wrap          bool
	grid          [2][]bool
	front         int
	gen           int
}

// NewGame returns an empty width x height grid. With wrap set, opposite
// edges are neighbours.
func NewGame(width, height int, wrap bool) *Game {
	g := &Game{width: width, height: height, wrap: wrap}
	g.grid[0] = make([]bool, width*height)
	g.grid[1] = make([]bool, width*height)
	return g
}

func (g *Game) Width() int      { return g.width }
func (g *Game) Height() int     { return g.height }
func (g *Game) Wrap() bool      { return g.wrap }
func (g *Game) Generation() int { return g.gen }

func (g *Game) in(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Alive reports whether the cell is alive. Out-of-range cells are dead.
func (g *Game) Alive(row, col int) bool {
	if !g.in(row, col) {
		return false
	}
	return g.grid[g.front][row*g.width+col]
}

// SetOn brings a cell to life. It reports false when out of range.
func (g *Game) SetOn(row, col int) bool { return g.set(row, col, true) }

// SetOff kills a cell. It reports false when out of range.
func (g *Game) SetOff(row, col int) bool { return g.set(row, col, false) }

func (g *Game) set(row, col int, v bool) bool {
	if !g.in(row, col) {
		return false
	}
	g.grid[g.front][row*g.width+col] = v
	return true
}

// Invert flips a cell. It reports false when out of range.
func (g *Game) Invert(row, col int) bool {
	if !g.in(row, col) {
		return false
	}
	i := row*g.width + col
	g.grid[g.front][i] = !g.grid[g.front][i]
	return true
}

// Clear kills every cell and resets the generation counter.
func (g *Game) Clear() {
	clear(g.grid[0])
	clear(g.grid[1])
	g.gen = 0
}

// Population counts living cells.
func (g *Game) Population() int {
	n := 0
	for _, c := range g.grid[g.front] {
		if c {
			n++
		}
	}
	return n
}

func (g *Game) neighbours(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if g.wrap {
				r = (r + g.height) % g.height
				c = (c + g.width) % g.width
			}
			if g.Alive(r, c) {
				n++
			}
		}
	}
	return n
}

// Step advances one generation: a live cell with 2 or 3 neighbours
// survives, a dead cell with exactly 3 is born.
func (g *Game) Step() {
	back := g.grid[1-g.front]
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			n := g.neighbours(row, col)
			back[row*g.width+col] = n == 3 || (n == 2 && g.Alive(row, col))
		}
	}
	g.front = 1 - g.front
	g.gen++
}

// Rows renders the grid, one string per row.
func (g *Game) Rows() []string {
	rows := make([]string, g.height)
	var b strings.Builder
	for row := 0; row < g.height; row++ {
		b.Reset()
		for col := 0; col < g.width; col++ {
			if g.Alive(row, col) {
				b.WriteByte(AliveGlyph)
			} else {
				b.WriteByte(DeadGlyph)
			}
		}
		rows[row] = b.String()
	}
	return rows
}

// Resize returns a new grid of the given size keeping the overlapping
// top-left region.
func (g *Game) Resize(width, height int) *Game {
	ng := NewGame(width, height, g.wrap)
	for row := 0; row < min(height, g.height); row++ {
		for col := 0; col < min(width, g.width); col++ {
			if g.Alive(row, col) {
				ng.SetOn(row, col)
			}
		}
	}
	return ng
}
