package registry

import (
	"strings"

	"github.com/nathoo/termfolio/engine/command"
	"github.com/nathoo/termfolio/engine/differ"
)

func diffBranch() *command.Branch {
	return &command.Branch{
		Description: "Custom diff implementation on strings",
		Default:     &command.Leaf{Action: showDiff},
		Children: []command.Child{
			command.Named("a", &command.Leaf{
				Description: "Set the first input",
				Action: func(env *command.Env, call command.Call) {
					env.Diff.SetA(strings.Join(call.Rest, " "))
					showDiff(env, call)
				},
			}),
			command.Named("b", &command.Leaf{
				Description: "Set the second input",
				Action: func(env *command.Env, call command.Call) {
					env.Diff.SetB(strings.Join(call.Rest, " "))
					showDiff(env, call)
				},
			}),
			command.Named("clear", &command.Leaf{
				Description: "Empty both inputs",
				Action: func(env *command.Env, call command.Call) {
					env.Diff.Clear()
					showDiff(env, call)
				},
			}),
		},
	}
}

func showDiff(env *command.Env, _ command.Call) {
	a, b := env.Diff.Get()
	env.Out.Element(differ.Element(a, b))
}
