package conway

import (
	"fmt"
	"sync"
	"time"
)

// MaxSide bounds both board dimensions.
const MaxSide = 50

// Snapshot is a copy of the board state for rendering.
type Snapshot struct {
	Rows       []string
	Width      int
	Height     int
	Generation int
	Population int
	Preset     string
	Seed       int64 // set for random soups
	Wrap       bool
	Running    bool
	Run        uint64 // simulation run that produced this frame, 0 for direct commands
}

// Board owns one game and the simulation that plays it. Safe for
// concurrent use: commands and timer ticks arrive on different
// goroutines.
type Board struct {
	mu      sync.Mutex
	game    *Game
	preset  string
	seed    int64
	sim     *Simulation
	onFrame func(Snapshot)
}

// NewBoard returns a board holding the default preset.
func NewBoard(interval time.Duration) *Board {
	b := &Board{}
	b.sim = NewSimulation(interval, b.tick)
	p, _ := LookupPreset(DefaultPreset)
	b.game, _ = p.Apply(false)
	b.preset = p.Name
	return b
}

// OnFrame registers the receiver of play-mode frames.
func (b *Board) OnFrame(fn func(Snapshot)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onFrame = fn
}

func (b *Board) tick(run uint64) {
	b.mu.Lock()
	b.game.Step()
	snap := b.snapshotLocked()
	fn := b.onFrame
	b.mu.Unlock()

	snap.Run = run
	if fn != nil {
		fn(snap)
	}
}

func (b *Board) snapshotLocked() Snapshot {
	return Snapshot{
		Rows:       b.game.Rows(),
		Width:      b.game.Width(),
		Height:     b.game.Height(),
		Generation: b.game.Generation(),
		Population: b.game.Population(),
		Preset:     b.preset,
		Seed:       b.seed,
		Wrap:       b.game.Wrap(),
		Running:    b.sim.Running(),
	}
}

// Snapshot copies the current state.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// Play starts the simulation; false if it was already running.
func (b *Board) Play() bool { return b.sim.Start() }

// Pause stops the simulation; false if it was not running.
func (b *Board) Pause() bool { return b.sim.Stop() }

func (b *Board) Running() bool { return b.sim.Running() }

// Active reports whether run is the live simulation run.
func (b *Board) Active(run uint64) bool { return b.sim.Active(run) }

// Loops exposes the number of live tick goroutines.
func (b *Board) Loops() int { return b.sim.Loops() }

// StepOnce advances one generation.
func (b *Board) StepOnce() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.game.Step()
}

// Reset kills every cell, keeping the size.
func (b *Board) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.game.Clear()
	b.preset = ""
	b.seed = 0
}

// Apply replaces the board with a named preset. For "random" the seed
// picks the soup; zero means seed from the clock.
func (b *Board) Apply(name string, seed int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if name == RandomPreset {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := NewRNG(seed)
		b.game = Soup(b.game.Width(), b.game.Height(), b.game.Wrap(), rng)
		b.preset, b.seed = name, rng.Seed()
		return nil
	}

	p, ok := LookupPreset(name)
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}
	g, err := p.Apply(b.game.Wrap())
	if err != nil {
		return err
	}
	b.game, b.preset, b.seed = g, p.Name, 0
	return nil
}

// Resize changes the board size, keeping the overlapping cells.
func (b *Board) Resize(width, height int) error {
	if width < 1 || width > MaxSide || height < 1 || height > MaxSide {
		return fmt.Errorf("size %dx%d outside 1..%d", width, height, MaxSide)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.game = b.game.Resize(width, height)
	return nil
}

// Toggle flips one cell.
func (b *Board) Toggle(row, col int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.game.Invert(row, col) {
		return fmt.Errorf("cell %d,%d outside %dx%d board", row, col, b.game.Width(), b.game.Height())
	}
	return nil
}

// SetWrap switches edge wrapping on the current board.
func (b *Board) SetWrap(wrap bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.game.wrap = wrap
}

// Close stops any running simulation.
func (b *Board) Close() {
	b.sim.Stop()
}
