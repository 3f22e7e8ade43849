package resolve

import (
	"testing"

	"github.com/nathoo/termfolio/engine/command"
	"github.com/nathoo/termfolio/engine/parser"
	"github.com/nathoo/termfolio/render"
	"github.com/nathoo/termfolio/types"
)

type fixture struct {
	root  *command.Branch
	env   *command.Env
	rec   *render.Recorder
	calls []command.Call
	log   []string
}

func newFixture() *fixture {
	f := &fixture{rec: render.NewRecorder()}
	f.env = &command.Env{Out: f.rec}
	record := func(name string) command.Action {
		return func(_ *command.Env, call command.Call) {
			f.log = append(f.log, name)
			f.calls = append(f.calls, call)
		}
	}
	f.root = &command.Branch{Children: []command.Child{
		command.Named("about", &command.Leaf{Template: "about"}),
		command.Named("echo", &command.Leaf{Action: record("echo")}),
		command.Named("history", &command.Branch{
			Default: &command.Leaf{Action: record("history-list")},
			Children: []command.Child{
				command.Named("clear", &command.Leaf{
					Template: render.TmplHistoryCleared,
					Deferred: func(*command.Env) { f.log = append(f.log, "deferred-clear") },
				}),
				command.Predicate("<index>", command.IsInt, &command.Leaf{Action: record("history-index")}),
			},
		}),
		command.Named("diff", &command.Branch{Children: []command.Child{
			command.Named("a", &command.Leaf{Action: record("diff-a"), Template: "diff"}),
		}}),
	}}
	return f
}

func (f *fixture) resolve(line string) command.Result {
	return Resolve(f.root, parser.NewCursor(line), f.env)
}

func (f *fixture) onlyBlock(t *testing.T) types.Block {
	t.Helper()
	blocks := f.rec.Blocks()
	if len(blocks) != 1 {
		t.Fatalf("rendered %d blocks, want 1: %+v", len(blocks), blocks)
	}
	return blocks[0]
}

func TestResolve_Empty(t *testing.T) {
	f := newFixture()
	res := f.resolve("   ")
	if res.Outcome != types.OutcomeEmpty || res.Kind != command.Immediate {
		t.Errorf("result = %+v", res)
	}
	if b := f.onlyBlock(t); b.Template != render.TmplNoCommand {
		t.Errorf("template = %q", b.Template)
	}
}

func TestResolve_InvalidPrefix(t *testing.T) {
	tests := []struct {
		line, prefix string
	}{
		{"bogus", "bogus"},
		{"Bogus extra words", "bogus"},
		{"diff zzz", "diff zzz"},
		{"history nope", "history nope"},
	}
	for _, tt := range tests {
		f := newFixture()
		res := f.resolve(tt.line)
		if res.Outcome != types.OutcomeInvalid {
			t.Errorf("%q: outcome = %q", tt.line, res.Outcome)
		}
		b := f.onlyBlock(t)
		if b.Template != render.TmplInvalidCommand || b.Args["prefix"] != tt.prefix {
			t.Errorf("%q: block = %+v, want prefix %q", tt.line, b, tt.prefix)
		}
	}
}

func TestResolve_BranchDefault(t *testing.T) {
	f := newFixture()
	res := f.resolve("history")
	if res.Outcome != types.OutcomeOK {
		t.Errorf("outcome = %q", res.Outcome)
	}
	if len(f.log) != 1 || f.log[0] != "history-list" {
		t.Errorf("log = %v", f.log)
	}
	if f.calls[0].HasArg {
		t.Error("default leaf should get no argument")
	}
}

func TestResolve_NoDefault(t *testing.T) {
	f := newFixture()
	res := f.resolve("DIFF")
	if res.Outcome != types.OutcomeNoDefault {
		t.Errorf("outcome = %q", res.Outcome)
	}
	b := f.onlyBlock(t)
	if b.Template != render.TmplNoDefault || b.Args["prefix"] != "diff" {
		t.Errorf("block = %+v", b)
	}
	if opts, _ := b.Args["options"].([]string); len(opts) != 1 || opts[0] != "a" {
		t.Errorf("options = %v", b.Args["options"])
	}
}

func TestResolve_LeafActionGetsRawArg(t *testing.T) {
	f := newFixture()
	f.resolve("diff a Hello World")
	if len(f.calls) != 1 {
		t.Fatalf("calls = %d", len(f.calls))
	}
	c := f.calls[0]
	if c.Token != "a" || !c.HasArg || c.Arg != "Hello" {
		t.Errorf("call = %+v", c)
	}
	if len(c.Rest) != 2 || c.Rest[1] != "World" {
		t.Errorf("Rest = %q", c.Rest)
	}
	// Action runs before the template renders.
	if b := f.onlyBlock(t); b.Template != "diff" {
		t.Errorf("template = %q", b.Template)
	}
}

func TestResolve_LeafWithoutArg(t *testing.T) {
	f := newFixture()
	f.resolve("echo")
	if f.calls[0].HasArg || f.calls[0].Arg != "" || f.calls[0].Rest != nil {
		t.Errorf("call = %+v", f.calls[0])
	}
}

func TestResolve_PredicateLeafSeesToken(t *testing.T) {
	f := newFixture()
	f.resolve("history -1")
	if len(f.log) != 1 || f.log[0] != "history-index" {
		t.Fatalf("log = %v", f.log)
	}
	if f.calls[0].Token != "-1" {
		t.Errorf("Token = %q, want -1", f.calls[0].Token)
	}
}

func TestResolve_DeferredReturnedNotRun(t *testing.T) {
	f := newFixture()
	res := f.resolve("history clear")
	if res.Kind != command.DeferredAfterHistoryPush {
		t.Fatalf("kind = %v", res.Kind)
	}
	if len(f.log) != 0 {
		t.Errorf("deferred action ran during resolution: %v", f.log)
	}
	if b := f.onlyBlock(t); b.Template != render.TmplHistoryCleared {
		t.Errorf("template = %q", b.Template)
	}
	res.Action()
	if len(f.log) != 1 || f.log[0] != "deferred-clear" {
		t.Errorf("log = %v", f.log)
	}
}

func TestResolve_TemplateLeaf(t *testing.T) {
	f := newFixture()
	res := f.resolve("About")
	if res.Kind != command.Immediate || res.Outcome != types.OutcomeOK {
		t.Errorf("result = %+v", res)
	}
	if b := f.onlyBlock(t); b.Template != "about" {
		t.Errorf("template = %q", b.Template)
	}
}
