package registry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nathoo/termfolio/engine/command"
	"github.com/nathoo/termfolio/engine/conway"
	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/types"
)

// BoardClass marks the board element so play-mode frames can replace it.
const BoardClass = "conway"

func conwayBranch() *command.Branch {
	return &command.Branch{
		Description: "Conway's Game of Life implementation",
		Default:     &command.Leaf{Action: showBoard},
		Children: []command.Child{
			command.Named("about", &command.Leaf{
				Description: "Background explanation for the Game of Life",
				Template:    render.TmplConwayAbout,
			}),
			command.Named("play", &command.Leaf{
				Description: "Run the simulation",
				Action: func(env *command.Env, call command.Call) {
					if env.Board.Play() {
						env.Log.Debugf("conway: play")
					}
					board := env.Board
					env.SetCleanup(func() { board.Pause() })
					showBoard(env, call)
				},
			}),
			command.Named("pause", &command.Leaf{
				Description: "Halt the simulation",
				Action: func(env *command.Env, call command.Call) {
					env.Board.Pause()
					showBoard(env, call)
				},
			}),
			command.Named("step", &command.Leaf{
				Description: "Advance one generation",
				Action: func(env *command.Env, call command.Call) {
					env.Board.StepOnce()
					showBoard(env, call)
				},
			}),
			command.Named("reset", &command.Leaf{
				Description: "Clear every cell",
				Action: func(env *command.Env, call command.Call) {
					env.Board.Reset()
					showBoard(env, call)
				},
			}),
			command.Named("preset", &command.Leaf{
				Description: "Load a pattern: " + strings.Join(conway.PresetNames(), ", "),
				Action:      applyPreset,
			}),
			command.Named("size", &command.Leaf{
				Description: "Resize the board, e.g. 20x12",
				Action:      resizeBoard,
			}),
			command.Named("toggle", &command.Leaf{
				Description: "Flip one cell, e.g. 3,4",
				Action:      toggleCell,
			}),
			command.Named("wrap", &command.Leaf{
				Description: "Connect opposite edges: on or off",
				Action:      setWrap,
			}),
		},
	}
}

func showBoard(env *command.Env, _ command.Call) {
	env.Out.Element(BoardElement(env.Board.Snapshot()))
}

func usage(env *command.Env, u string, reason error) {
	args := render.Args{"usage": u}
	if reason != nil {
		args["reason"] = reason.Error()
	}
	env.Out.Template(render.TmplUsage, args)
}

func applyPreset(env *command.Env, call command.Call) {
	const u = "conway preset <name> [seed]"
	if !call.HasArg {
		usage(env, u, fmt.Errorf("presets: %s", strings.Join(conway.PresetNames(), ", ")))
		return
	}
	var seed int64
	if len(call.Rest) > 1 {
		s, err := strconv.ParseInt(call.Rest[1], 10, 64)
		if err != nil {
			usage(env, u, fmt.Errorf("seed %q is not a number", call.Rest[1]))
			return
		}
		seed = s
	}
	if err := env.Board.Apply(strings.ToLower(call.Arg), seed); err != nil {
		usage(env, u, err)
		return
	}
	showBoard(env, call)
}

// parsePair splits "12x8" or "3,4" into two integers.
func parsePair(s, sep string) (int, int, error) {
	left, right, ok := strings.Cut(strings.ToLower(s), sep)
	if !ok {
		return 0, 0, fmt.Errorf("%q is missing %q", s, sep)
	}
	a, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a number", left)
	}
	b, err := strconv.Atoi(right)
	if err != nil {
		return 0, 0, fmt.Errorf("%q is not a number", right)
	}
	return a, b, nil
}

func resizeBoard(env *command.Env, call command.Call) {
	const u = "conway size <W>x<H>"
	if !call.HasArg {
		usage(env, u, nil)
		return
	}
	w, h, err := parsePair(call.Arg, "x")
	if err == nil {
		err = env.Board.Resize(w, h)
	}
	if err != nil {
		usage(env, u, err)
		return
	}
	showBoard(env, call)
}

func toggleCell(env *command.Env, call command.Call) {
	const u = "conway toggle <row>,<col>"
	if !call.HasArg {
		usage(env, u, nil)
		return
	}
	r, c, err := parsePair(call.Arg, ",")
	if err == nil {
		err = env.Board.Toggle(r, c)
	}
	if err != nil {
		usage(env, u, err)
		return
	}
	showBoard(env, call)
}

func setWrap(env *command.Env, call command.Call) {
	switch strings.ToLower(call.Arg) {
	case "on":
		env.Board.SetWrap(true)
	case "off":
		env.Board.SetWrap(false)
	default:
		usage(env, "conway wrap <on|off>", nil)
		return
	}
	showBoard(env, call)
}

// BoardElement renders a board snapshot. Play-mode frames use the same
// element, replacing the one on screen by BoardClass.
func BoardElement(s conway.Snapshot) types.Element {
	state := "paused"
	if s.Running {
		state = "playing"
	}
	name := s.Preset
	if name == "" {
		name = "custom"
	}
	if s.Seed != 0 {
		name = fmt.Sprintf("%s (seed %d)", name, s.Seed)
	}
	status := fmt.Sprintf("%s  %dx%d  generation %d  population %d  %s",
		name, s.Width, s.Height, s.Generation, s.Population, state)
	if s.Wrap {
		status += "  wrap"
	}

	return render.Fragment(BoardClass,
		render.Heading("Conway's Game of Life"),
		render.Pre("conway-board", strings.Join(s.Rows, "\n")),
		render.Para(render.Span("hint", status)),
		render.Para(
			render.Command("play", "conway play"), render.Text(" "),
			render.Command("pause", "conway pause"), render.Text(" "),
			render.Command("step", "conway step"), render.Text(" "),
			render.Command("reset", "conway reset"), render.Text(" "),
			render.Command("about", "conway about"),
		),
	)
}
