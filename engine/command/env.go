package command

import (
	"sync"

	"github.com/nathoo/termfolio/engine/conway"
	"github.com/nathoo/termfolio/engine/differ"
	"github.com/nathoo/termfolio/engine/history"
	"github.com/nathoo/termfolio/logging"
	"github.com/nathoo/termfolio/render"
)

// Env is the per-console application state commands act on. The command
// tree itself is shared and immutable; everything mutable lives here.
type Env struct {
	Out     render.Renderer
	History *history.History
	Board   *conway.Board
	Diff    *differ.Pair
	Log     *logging.Logger

	mu      sync.Mutex
	cleanup func()
}

// SetCleanup registers fn to run before the next submission replaces
// the output. Only the last registration of a submission is kept.
func (e *Env) SetCleanup(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cleanup = fn
}

// TakeCleanup returns and clears the pending cleanup.
func (e *Env) TakeCleanup() func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn := e.cleanup
	e.cleanup = nil
	return fn
}
