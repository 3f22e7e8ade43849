// Package command defines the command tree: leaves that act and render,
// branches that hold ordered named or predicate children, and the
// environment actions run in.
package command

import (
	"github.com/nathoo/termfolio/render"
)

// Node is either a *Leaf or a *Branch.
type Node interface {
	Describe() string
}

// Call carries the tokens a leaf was reached with.
type Call struct {
	Token  string   // the raw token that matched this leaf
	Arg    string   // next raw token, if HasArg
	HasArg bool
	Rest   []string // every raw token after Token
}

// Action runs when a leaf is resolved, before its template renders.
type Action func(env *Env, call Call)

// Leaf is a terminal command. Every field is optional.
type Leaf struct {
	Description string
	Template    string
	Args        render.Args
	Action      Action
	// Deferred runs strictly after the submission is pushed to history.
	Deferred func(env *Env)
}

func (l *Leaf) Describe() string { return l.Description }

// Branch holds children tested in declared order, first match wins, and
// an optional default used when no further token is given.
type Branch struct {
	Description string
	Children    []Child
	Default     *Leaf
}

func (b *Branch) Describe() string { return b.Description }

// Lookup returns the first child matching tok.
func (b *Branch) Lookup(tok string) (Child, bool) {
	for _, c := range b.Children {
		if c.Matches(tok) {
			return c, true
		}
	}
	return Child{}, false
}

// Names returns the labels of all children in declared order.
func (b *Branch) Names() []string {
	names := make([]string, 0, len(b.Children))
	for _, c := range b.Children {
		names = append(names, c.Label())
	}
	return names
}
