// Package types defines the shared data structures for the termfolio console.
// It holds type definitions only, with no logic.
package types

// ElementKind identifies the shape of a rendered element.
type ElementKind int

const (
	ElemFragment ElementKind = iota
	ElemHeading
	ElemParagraph
	ElemText
	ElemList
	ElemItem
	ElemLink
	ElemCommand // clickable; activating it resubmits Command
	ElemSpan
	ElemPre
	ElemBreak
)

// Element is a node of a dynamically constructed output tree. Front ends
// turn it into styled terminal text or HTML.
type Element struct {
	Kind     ElementKind
	Text     string
	Class    string // style hint, e.g. "error", "diff-insert"
	Href     string // ElemLink only
	Command  string // ElemCommand only
	Children []Element
}

// Block is one unit of console output: either a named template reference
// or a constructed element.
type Block struct {
	Template string         // non-empty for template blocks
	Args     map[string]any // template arguments
	Element  *Element       // non-nil for element blocks
}

// OutcomeKind classifies how a submitted line was resolved.
type OutcomeKind string

const (
	OutcomeEmpty     OutcomeKind = "empty"
	OutcomeInvalid   OutcomeKind = "invalid"
	OutcomeNoDefault OutcomeKind = "no-default"
	OutcomeOK        OutcomeKind = "ok"
)

// Outcome summarizes one submission through the dispatch loop.
type Outcome struct {
	Input      string   // raw line as typed
	Tokens     []string // normalized tokens
	Kind       OutcomeKind
	Deferred   bool // a deferred action ran after the history push
	ClearInput bool // front end should clear and blur its input field
}

// Frame is an asynchronous content update produced by a running
// simulation. Gen identifies the run that produced it; front ends drop
// frames whose run has been stopped.
type Frame struct {
	Gen     uint64
	Class   string // class of the element to replace
	Element Element
}
