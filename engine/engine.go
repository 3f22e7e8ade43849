// Package engine provides the dispatch loop that wires tokenizing,
// resolution, history and cleanup hooks into a single submission.
package engine

import (
	"sync"

	"github.com/nathoo/termfolio/engine/command"
	"github.com/nathoo/termfolio/engine/conway"
	"github.com/nathoo/termfolio/engine/differ"
	"github.com/nathoo/termfolio/engine/history"
	"github.com/nathoo/termfolio/engine/parser"
	"github.com/nathoo/termfolio/engine/registry"
	"github.com/nathoo/termfolio/engine/resolve"
	"github.com/nathoo/termfolio/logging"
	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/types"
)

// Options configures an Engine. Zero values get working defaults: an
// in-memory history, a Recorder, the portfolio command tree and a board
// ticking every 100ms.
type Options struct {
	History *history.History
	Out     render.Renderer
	Root    *command.Branch
	Board   *conway.Board
	Logger  *logging.Logger
	// OnFrame receives play-mode board frames from the simulation
	// goroutine. Check FrameCurrent before drawing one.
	OnFrame func(types.Frame)
}

// Engine is one console: its history, its output and the state its
// commands act on. Safe for concurrent use.
type Engine struct {
	mu      sync.Mutex
	root    *command.Branch
	env     *command.Env
	cleanup func()
	log     *logging.Logger
}

// New creates an engine from opts.
func New(opts Options) *Engine {
	if opts.History == nil {
		opts.History = history.New(nil, history.DefaultKey, history.DefaultCapacity, opts.Logger)
	}
	if opts.Out == nil {
		opts.Out = render.NewRecorder()
	}
	if opts.Root == nil {
		opts.Root = registry.New()
	}
	if opts.Board == nil {
		opts.Board = conway.NewBoard(conway.DefaultInterval)
	}

	e := &Engine{
		root: opts.Root,
		env: &command.Env{
			Out:     opts.Out,
			History: opts.History,
			Board:   opts.Board,
			Diff:    &differ.Pair{},
			Log:     opts.Logger,
		},
		log: opts.Logger,
	}

	if onFrame := opts.OnFrame; onFrame != nil {
		opts.Board.OnFrame(func(s conway.Snapshot) {
			onFrame(types.Frame{
				Gen:     s.Run,
				Class:   registry.BoardClass,
				Element: registry.BoardElement(s),
			})
		})
	}
	return e
}

// Submit runs one line through the dispatch loop:
//
//  1. run the cleanup left by the previous command
//  2. tokenize and clear the output
//  3. resolve, keeping any deferred action and new cleanup
//  4. push the raw line to history
//  5. run the deferred action
//
// The returned outcome always asks the front end to clear its input.
func (e *Engine) Submit(raw string) types.Outcome {
	e.mu.Lock()
	defer e.mu.Unlock()

	if fn := e.cleanup; fn != nil {
		e.cleanup = nil
		fn()
	}

	cur := parser.NewCursor(raw)
	e.env.Out.Clear()

	res := resolve.Resolve(e.root, cur, e.env)
	e.cleanup = e.env.TakeCleanup()

	e.env.History.Push(raw)

	deferred := res.Kind == command.DeferredAfterHistoryPush && res.Action != nil
	if deferred {
		res.Action()
	}

	e.log.Logf("submit %q: %s (%s)", raw, res.Outcome, res.Kind)

	return types.Outcome{
		Input:      raw,
		Tokens:     cur.Tokens(),
		Kind:       res.Outcome,
		Deferred:   deferred,
		ClearInput: true,
	}
}

// HistoryPrev moves the history cursor back. ok is false when nothing
// changed and the input should be left alone.
func (e *Engine) HistoryPrev() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.env.History.Prev()
}

// HistoryNext moves the history cursor forward.
func (e *Engine) HistoryNext() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.env.History.Next()
}

// HistoryLen returns the number of stored entries.
func (e *Engine) HistoryLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.env.History.Len()
}

// HistoryEntries returns a copy of the stored entries, oldest first.
func (e *Engine) HistoryEntries() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.env.History.Entries()
}

// Complete returns completion candidates for a partial line.
func (e *Engine) Complete(input string) []string {
	return command.Complete(e.root, input)
}

// Running reports whether the board simulation is playing.
func (e *Engine) Running() bool {
	return e.env.Board.Running()
}

// FrameCurrent reports whether f comes from the live simulation run.
// Frames from a stopped run must be dropped.
func (e *Engine) FrameCurrent(f types.Frame) bool {
	return e.env.Board.Active(f.Gen)
}

// ApplyFrame replaces the board on rec if f is current and the board is
// still on screen.
func (e *Engine) ApplyFrame(rec *render.Recorder, f types.Frame) bool {
	if !e.FrameCurrent(f) {
		return false
	}
	return rec.Replace(f.Class, f.Element)
}

// Close runs any pending cleanup and stops the board.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if fn := e.cleanup; fn != nil {
		e.cleanup = nil
		fn()
	}
	e.env.Board.Close()
}
