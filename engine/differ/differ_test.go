package differ

import (
	"strings"
	"testing"

	"github.com/nathoo/termfolio/render"
)

// apply rebuilds a or b from the segments.
func apply(segs []Segment, skip Op) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Op != skip {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

func TestDiff_Reconstructs(t *testing.T) {
	tests := []struct{ a, b string }{
		{"kitten", "sitting"},
		{"", "new"},
		{"old", ""},
		{"same", "same"},
		{"héllo wörld", "hello world"},
	}
	for _, tt := range tests {
		segs := Diff(tt.a, tt.b)
		if got := apply(segs, Insert); got != tt.a {
			t.Errorf("Diff(%q, %q): a side = %q", tt.a, tt.b, got)
		}
		if got := apply(segs, Delete); got != tt.b {
			t.Errorf("Diff(%q, %q): b side = %q", tt.a, tt.b, got)
		}
	}
}

func TestDiff_Identical(t *testing.T) {
	segs := Diff("abc", "abc")
	if len(segs) != 1 || segs[0].Op != Equal {
		t.Errorf("segments = %+v, want one Equal", segs)
	}
	if ins, del := Stats(segs); ins != 0 || del != 0 {
		t.Errorf("Stats = +%d -%d", ins, del)
	}
}

func TestDiff_CRLFNormalized(t *testing.T) {
	segs := Diff("a\r\nb", "a\nb")
	if len(segs) != 1 || segs[0].Op != Equal || segs[0].Text != "a\nb" {
		t.Errorf("segments = %+v", segs)
	}
}

func TestStats_CountsRunes(t *testing.T) {
	ins, del := Stats([]Segment{{Insert, "ü"}, {Delete, "ab"}, {Equal, "x"}})
	if ins != 1 || del != 2 {
		t.Errorf("Stats = +%d -%d, want +1 -2", ins, del)
	}
}

func TestElement_PlainText(t *testing.T) {
	out := render.NewTextWriter(nil).Render(Element("cat", "cut"))
	for _, want := range []string{"A: cat", "B: cut", "c[-a-]{+u+}t", "+1 -1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output:\n%s\nmissing %q", out, want)
		}
	}
}

func TestPair(t *testing.T) {
	var p Pair
	p.SetA("one")
	p.SetB("two")
	if a, b := p.Get(); a != "one" || b != "two" {
		t.Errorf("Get = %q, %q", a, b)
	}
	p.Clear()
	if a, b := p.Get(); a != "" || b != "" {
		t.Errorf("after Clear = %q, %q", a, b)
	}
}
