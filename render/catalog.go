package render

import (
	"fmt"
	"sort"

	"github.com/nathoo/termfolio/types"
)

// Template ids the console core depends on.
const (
	TmplNoCommand      = "no-command"
	TmplInvalidCommand = "invalid-command"
	TmplNoDefault      = "no-default-for-branch"
	TmplOutOfBounds    = "history-out-of-bounds"
	TmplHistoryCleared = "history-cleared"
	TmplUsage          = "usage"
	TmplConwayAbout    = "conway-about"
)

// Content template ids, registered by RegisterPortfolio.
const (
	TmplAbout    = "about"
	TmplSkills   = "skills"
	TmplProjects = "projects"
	TmplProject  = "project" // one project, Args{"id": ...}
	TmplContact  = "contact"
)

// TemplateFunc builds the element tree for a template block.
type TemplateFunc func(args Args) types.Element

// Catalog maps template ids to builders. It is filled at startup and
// read-only afterwards.
type Catalog struct {
	templates map[string]TemplateFunc
}

// NewCatalog returns a catalog holding the core error templates.
func NewCatalog() *Catalog {
	c := &Catalog{templates: map[string]TemplateFunc{}}
	c.Register(TmplNoCommand, noCommand)
	c.Register(TmplInvalidCommand, invalidCommand)
	c.Register(TmplNoDefault, noDefault)
	c.Register(TmplOutOfBounds, outOfBounds)
	c.Register(TmplHistoryCleared, func(Args) types.Element {
		return Para(Text("History cleared"))
	})
	c.Register(TmplUsage, usage)
	c.Register(TmplConwayAbout, conwayAbout)
	return c
}

// Register adds or replaces a template.
func (c *Catalog) Register(id string, fn TemplateFunc) {
	c.templates[id] = fn
}

// Has reports whether id is registered.
func (c *Catalog) Has(id string) bool {
	_, ok := c.templates[id]
	return ok
}

// IDs returns the registered ids, sorted.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.templates))
	for id := range c.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Expand turns a block into its element tree. Unknown template ids
// render a visible placeholder rather than failing.
func (c *Catalog) Expand(b types.Block) types.Element {
	if b.Element != nil {
		return *b.Element
	}
	fn, ok := c.templates[b.Template]
	if !ok {
		return Para(Span("error", fmt.Sprintf("[missing template %q]", b.Template)))
	}
	return fn(Args(b.Args))
}

// ExpandAll expands every block in order.
func (c *Catalog) ExpandAll(blocks []types.Block) []types.Element {
	out := make([]types.Element, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, c.Expand(b))
	}
	return out
}

// String returns args[key] as a string, or "".
func (a Args) String(key string) string {
	switch v := a[key].(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// Int returns args[key] as an int, or 0.
func (a Args) Int(key string) int {
	switch v := a[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Strings returns args[key] as a string slice, or nil.
func (a Args) Strings(key string) []string {
	if v, ok := a[key].([]string); ok {
		return v
	}
	return nil
}

func noCommand(Args) types.Element {
	return Para(
		Span("hint", "Type a command and press enter. Try "),
		Command("help", "help"),
		Span("hint", "."),
	)
}

func invalidCommand(a Args) types.Element {
	return Para(
		Span("error", "invalid command: "),
		Span("input", a.String("prefix")),
		Break(),
		Span("hint", "Type 'help' for a list of commands."),
	)
}

func noDefault(a Args) types.Element {
	prefix := a.String("prefix")
	p := Para(
		Span("input", prefix),
		Span("error", " needs a subcommand"),
	)
	opts := a.Strings("options")
	if len(opts) == 0 {
		return p
	}
	items := make([]types.Element, 0, len(opts))
	for _, o := range opts {
		items = append(items, Item(Command(o, prefix+" "+o)))
	}
	return Fragment("", p, List(items...))
}

func outOfBounds(a Args) types.Element {
	return Para(
		Span("error", "Index was out of bounds"),
		Text(fmt.Sprintf(" (%s, count: %d)", a.String("index"), a.Int("count"))),
	)
}

func usage(a Args) types.Element {
	children := []types.Element{Span("error", "usage: "), Span("input", a.String("usage"))}
	if r := a.String("reason"); r != "" {
		children = append(children, Break(), Span("hint", r))
	}
	return Para(children...)
}

func conwayAbout(Args) types.Element {
	return Fragment("conway-about",
		Heading("Conway's Game of Life"),
		Para(
			Text("Devised by the late British mathematician "),
			Link("John Horton Conway", "https://en.wikipedia.org/wiki/John_Horton_Conway"),
			Text(", the Game of Life is a simple 2D simulation of cells treated as organisms. "+
				"Each cell is either alive or dead, and every generation follows two rules:"),
		),
		List(
			Item(Text("A living cell with 2 or 3 neighbors (diagonals included) stays alive. Otherwise it dies.")),
			Item(Text("A dead cell with exactly 3 neighbors becomes alive. Otherwise it stays dead.")),
		),
		Para(
			Text("Some patterns loop forever, many die off, and many explode first. "+
				"The game is one example of a broader family known as "),
			Link("Cellular Automata", "https://en.wikipedia.org/wiki/Cellular_automaton"),
			Text(". It is also Turing complete: patterns such as the Gosper gun can build logic gates, "+
				"so the game can even simulate "),
			Link("itself", "https://www.youtube.com/watch?v=xP5-iIeKXE8"),
			Text("."),
		),
		Heading("Controls"),
		List(
			Item(Command("conway play", "conway play"), Text(" / "), Command("conway pause", "conway pause"), Text(" run or halt the 100ms timer")),
			Item(Command("conway step", "conway step"), Text(" advance one generation")),
			Item(Command("conway reset", "conway reset"), Text(" clear every cell")),
			Item(Text("conway preset <glider|blinker|pentadecathlon|spaceship|random>")),
			Item(Text("conway size <W>x<H>, conway toggle <row>,<col>")),
		),
	)
}
