// Package resolve walks a tokenized line down the command tree and runs
// whatever it lands on.
package resolve

import (
	"github.com/nathoo/termfolio/engine/command"
	"github.com/nathoo/termfolio/engine/parser"
	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/types"
)

// Resolve matches the cursor's tokens against root. User errors are
// rendered through env.Out and reported in the result's Outcome; they
// are never returned as Go errors.
func Resolve(root *command.Branch, cur *parser.Cursor, env *command.Env) command.Result {
	if cur.Empty() {
		env.Out.Template(render.TmplNoCommand, nil)
		return command.Done(types.OutcomeEmpty)
	}

	b := root
	for {
		tok, _ := cur.Current()
		child, ok := b.Lookup(tok)
		if !ok {
			env.Out.Template(render.TmplInvalidCommand, render.Args{"prefix": cur.Consumed()})
			return command.Done(types.OutcomeInvalid)
		}

		switch n := child.Node.(type) {
		case *command.Branch:
			raw, _ := cur.CurrentRaw()
			if !cur.Advance() {
				if n.Default != nil {
					return run(n.Default, env, command.Call{Token: raw})
				}
				env.Out.Template(render.TmplNoDefault, render.Args{
					"prefix":  cur.Consumed(),
					"options": n.Names(),
				})
				return command.Done(types.OutcomeNoDefault)
			}
			b = n
		case *command.Leaf:
			raw, _ := cur.CurrentRaw()
			arg, has := cur.PeekRaw()
			return run(n, env, command.Call{Token: raw, Arg: arg, HasArg: has, Rest: cur.RestRaw()})
		default:
			env.Out.Template(render.TmplInvalidCommand, render.Args{"prefix": cur.Consumed()})
			return command.Done(types.OutcomeInvalid)
		}
	}
}

// run executes a leaf: action, then template, then hands back any
// deferred action bound to env.
func run(l *command.Leaf, env *command.Env, call command.Call) command.Result {
	if l.Action != nil {
		l.Action(env, call)
	}
	if l.Template != "" {
		env.Out.Template(l.Template, l.Args)
	}
	if l.Deferred != nil {
		deferred := l.Deferred
		return command.Deferred(func() { deferred(env) })
	}
	return command.Done(types.OutcomeOK)
}
