package registry

import (
	"fmt"
	"strconv"

	"github.com/nathoo/termfolio/engine/command"
	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/types"
)

func historyBranch() *command.Branch {
	return &command.Branch{
		Description: "History of inputs to this terminal",
		Default:     &command.Leaf{Action: historyList},
		Children: []command.Child{
			command.Named("clear", &command.Leaf{
				Description: "Clears all of this terminal's history",
				Template:    render.TmplHistoryCleared,
				// Runs after the push, so "history clear" also wipes its own line.
				// TODO: decide whether the clear should keep its own entry.
				Deferred:    func(env *command.Env) { env.History.Clear() },
			}),
			command.Predicate("<index>", command.IsInt, &command.Leaf{
				Description: "Gets the history of this terminal at a specific index",
				Action:      historyIndex,
			}),
		},
	}
}

func historyList(env *command.Env, _ command.Call) {
	entries := env.History.Entries()
	items := make([]types.Element, 0, len(entries))
	for i, e := range entries {
		items = append(items, render.Item(
			render.Span("count", fmt.Sprintf("%d - ", i)),
			render.Command(e, e),
		))
	}
	env.Out.Element(render.Fragment("history",
		render.Heading("Command History"),
		render.Para(render.Text(fmt.Sprintf("count: %d", len(entries)))),
		render.List(items...),
	))
}

func historyIndex(env *command.Env, call command.Call) {
	n, err := strconv.Atoi(call.Token)
	i, ok := env.History.Index(n)
	if err != nil || !ok {
		env.Out.Template(render.TmplOutOfBounds, render.Args{
			"index": call.Token,
			"count": env.History.Len(),
		})
		return
	}
	entry, _ := env.History.Get(i)
	env.Out.Element(render.Fragment("history",
		render.Heading("Command History"),
		render.List(render.Item(render.Command(entry, entry))),
	))
}
