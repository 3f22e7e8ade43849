package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/nathoo/termfolio/engine"
	"github.com/nathoo/termfolio/engine/conway"
	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/types"
)

func init() {
	color.NoColor = true
}

func newTestCLI(t *testing.T, input string) (*CLI, *bytes.Buffer) {
	t.Helper()
	rec := render.NewRecorder()
	eng := engine.New(engine.Options{Out: rec, Board: conway.NewBoard(time.Hour)})
	t.Cleanup(eng.Close)

	var out bytes.Buffer
	c := New(eng, rec, render.NewCatalog())
	c.In = strings.NewReader(input)
	c.Out = &out
	return c, &out
}

func TestCLI_Greeting(t *testing.T) {
	c, out := newTestCLI(t, "")
	c.Greeting = []types.Element{render.Para(render.Text("Welcome to the test."))}
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Welcome to the test.") {
		t.Errorf("greeting missing:\n%s", out.String())
	}
}

func TestCLI_InvalidCommand(t *testing.T) {
	c, out := newTestCLI(t, "bogus\n")
	if err := c.Run(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "bogus") {
		t.Errorf("output:\n%s", out.String())
	}
	if c.Engine.HistoryLen() != 1 {
		t.Errorf("history len = %d", c.Engine.HistoryLen())
	}
}

func TestCLI_HelpListsCommands(t *testing.T) {
	c, out := newTestCLI(t, "help\n")
	c.Run()
	for _, want := range []string{"about", "projects", "history", "conway"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("help output missing %q:\n%s", want, out.String())
		}
	}
}

func TestCLI_SkipsComments(t *testing.T) {
	c, _ := newTestCLI(t, "# a comment\nhelp\n   # indented\n")
	c.Run()
	if n := c.Engine.HistoryLen(); n != 1 {
		t.Errorf("history len = %d, want 1", n)
	}
}

func TestCLI_EmptyLineSubmitted(t *testing.T) {
	c, _ := newTestCLI(t, "\n")
	c.Run()
	if n := c.Engine.HistoryLen(); n != 1 {
		t.Errorf("history len = %d, want 1", n)
	}
}

func TestCLI_EchoInput(t *testing.T) {
	c, out := newTestCLI(t, "history\n")
	c.EchoInput = true
	c.Run()
	if !strings.Contains(out.String(), "$ history\n") {
		t.Errorf("echo missing:\n%s", out.String())
	}
}

func TestCLI_HistoryFlow(t *testing.T) {
	c, out := newTestCLI(t, "help\nhistory clear\nhistory\n")
	c.Run()
	entries := c.Engine.HistoryEntries()
	if len(entries) != 1 || entries[0] != "history" {
		t.Errorf("entries = %q", entries)
	}
	if !strings.Contains(out.String(), "count: 0") {
		t.Errorf("history listing missing:\n%s", out.String())
	}
}

func TestCLI_DiffMarkers(t *testing.T) {
	c, out := newTestCLI(t, "diff a kitten\ndiff b sitting\ndiff\n")
	c.Run()
	if !strings.Contains(out.String(), "{+") || !strings.Contains(out.String(), "[-") {
		t.Errorf("diff markers missing:\n%s", out.String())
	}
}

func TestColorStyler_NoColorFallback(t *testing.T) {
	var s ColorStyler
	if got := s.Style("diff-insert", "x"); got != "{+x+}" {
		t.Errorf("Style = %q", got)
	}
	if got := s.Link("Email", "mailto:a@b.c"); got != "Email <mailto:a@b.c>" {
		t.Errorf("Link = %q", got)
	}
}
