// Package differ computes character diffs for the diff command.
package differ

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/types"
)

// Op classifies a diff segment.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Segment is a run of characters with one Op.
type Segment struct {
	Op   Op
	Text string
}

func normalize(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// Diff returns the character diff turning a into b. Windows newlines
// are reduced to \n first.
func Diff(a, b string) []Segment {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(normalize(a), normalize(b), false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	segs := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = Insert
		case diffmatchpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		segs = append(segs, Segment{Op: op, Text: d.Text})
	}
	return segs
}

// Stats counts inserted and deleted characters.
func Stats(segs []Segment) (inserted, deleted int) {
	for _, s := range segs {
		switch s.Op {
		case Insert:
			inserted += utf8.RuneCountInString(s.Text)
		case Delete:
			deleted += utf8.RuneCountInString(s.Text)
		}
	}
	return inserted, deleted
}

var opClass = map[Op]string{
	Equal:  "diff-equal",
	Insert: "diff-insert",
	Delete: "diff-delete",
}

// Element renders both inputs and their diff.
func Element(a, b string) types.Element {
	segs := Diff(a, b)
	spans := make([]types.Element, 0, len(segs))
	for _, s := range segs {
		spans = append(spans, render.Span(opClass[s.Op], s.Text))
	}
	if len(spans) == 0 {
		spans = append(spans, render.Span("hint", "(both inputs are empty)"))
	}
	ins, del := Stats(segs)

	return render.Fragment("diff",
		render.Heading("Diff inputs:"),
		render.Para(render.Span("label", "A: "), render.Text(a)),
		render.Para(render.Span("label", "B: "), render.Text(b)),
		render.Heading("Result:"),
		render.Para(spans...),
		render.Para(render.Span("hint", fmt.Sprintf("+%d -%d", ins, del))),
		render.Para(
			render.Span("hint", "set inputs with "),
			render.Command("diff a <text>", "diff a"),
			render.Span("hint", " and "),
			render.Command("diff b <text>", "diff b"),
		),
	)
}

// Pair holds the two diff inputs for one console session.
type Pair struct {
	mu   sync.Mutex
	a, b string
}

func (p *Pair) SetA(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.a = s
}

func (p *Pair) SetB(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.b = s
}

// Get returns both inputs.
func (p *Pair) Get() (a, b string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.a, p.b
}

// Clear empties both inputs.
func (p *Pair) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.a, p.b = "", ""
}
