// Package render provides the output capability the console core writes
// to, plus the named templates and the writers that turn recorded
// output into terminal text or HTML.
package render

import (
	"sync"

	"github.com/nathoo/termfolio/types"
)

// Args holds the arguments for a named template.
type Args map[string]any

// Renderer is the capability injected into command execution. The core
// never formats text itself: it either names a template or hands over a
// constructed element tree.
type Renderer interface {
	Clear()
	Template(id string, args Args)
	Element(el types.Element)
}

// Recorder is a Renderer that keeps the blocks of the current output so
// a front end can draw them. Safe for concurrent use: simulation frames
// replace elements from a timer goroutine.
type Recorder struct {
	mu     sync.Mutex
	blocks []types.Block
	rev    uint64
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocks = nil
	r.rev++
}

func (r *Recorder) Template(id string, args Args) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var a map[string]any
	if len(args) > 0 {
		a = make(map[string]any, len(args))
		for k, v := range args {
			a[k] = v
		}
	}
	r.blocks = append(r.blocks, types.Block{Template: id, Args: a})
	r.rev++
}

func (r *Recorder) Element(el types.Element) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocks = append(r.blocks, types.Block{Element: &el})
	r.rev++
}

// Replace swaps the first top-level element block carrying class for el.
// It reports false when no such block is on screen, which is how a
// stale simulation frame is recognised after the output moved on.
func (r *Recorder) Replace(class string, el types.Element) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.blocks {
		if b.Element != nil && b.Element.Class == class {
			r.blocks[i] = types.Block{Element: &el}
			r.rev++
			return true
		}
	}
	return false
}

// Blocks returns a copy of the recorded blocks.
func (r *Recorder) Blocks() []types.Block {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.Block(nil), r.blocks...)
}

// Revision increments on every mutation. Front ends compare it to skip
// redundant redraws.
func (r *Recorder) Revision() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rev
}

// Len returns the number of recorded blocks.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.blocks)
}
