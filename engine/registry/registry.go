// Package registry builds the portfolio console's command tree.
package registry

import (
	"strings"

	"github.com/nathoo/termfolio/engine/command"
	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/types"
)

// New builds the command tree. It is immutable once returned and may be
// shared between consoles; all mutable state lives in command.Env.
func New() *command.Branch {
	root := &command.Branch{Description: "portfolio console"}
	root.Children = []command.Child{
		command.Named("about", &command.Leaf{
			Description: "Introduction of myself",
			Template:    render.TmplAbout,
		}),
		command.Named("skills", &command.Leaf{
			Description: "Curated subjects or frameworks I have experience with",
			Template:    render.TmplSkills,
		}),
		command.Named("projects", &command.Leaf{
			Description: "Curated list of projects that I've spent a lot of time on",
			Action:      showProjects,
		}),
		command.Named("contact", &command.Leaf{
			Description: "Links to use to get in contact with me",
			Template:    render.TmplContact,
		}),
		command.Named("help", &command.Leaf{
			Description: "List the available commands",
			Action: func(env *command.Env, _ command.Call) {
				env.Out.Element(HelpElement(root))
			},
		}),
		command.Named("history", historyBranch()),
		command.Named("diff", diffBranch()),
		command.Named("conway", conwayBranch()),
	}
	return root
}

// showProjects lists every project, or one when an id follows.
func showProjects(env *command.Env, call command.Call) {
	if call.HasArg {
		env.Out.Template(render.TmplProject, render.Args{"id": strings.ToLower(call.Arg)})
		return
	}
	env.Out.Template(render.TmplProjects, nil)
}

// HelpElement lists every top-level command with its description and
// subcommands.
func HelpElement(root *command.Branch) types.Element {
	items := make([]types.Element, 0, len(root.Children))
	for _, c := range root.Children {
		children := []types.Element{render.Command(c.Label(), c.Label())}
		if d := c.Node.Describe(); d != "" {
			children = append(children, render.Text(" - "+d))
		}
		if b, ok := c.Node.(*command.Branch); ok && len(b.Children) > 0 {
			children = append(children, render.Span("hint", " ["+strings.Join(b.Names(), " | ")+"]"))
		}
		items = append(items, render.Item(children...))
	}
	return render.Fragment("help",
		render.Heading("Commands"),
		render.List(items...),
		render.Para(render.Span("hint",
			"Shift+Up and Shift+Down walk the history. Tab completes the current word.")),
	)
}
