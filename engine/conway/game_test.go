package conway

import (
	"reflect"
	"testing"
)

func setAll(g *Game, cells [][2]int) {
	for _, c := range cells {
		g.SetOn(c[0], c[1])
	}
}

func TestGame_Blinker(t *testing.T) {
	g := NewGame(3, 3, false)
	setAll(g, [][2]int{{0, 1}, {1, 1}, {2, 1}})

	g.Step()
	if got, want := g.Rows(), []string{"...", "###", "..."}; !reflect.DeepEqual(got, want) {
		t.Errorf("gen 1 = %q, want %q", got, want)
	}
	g.Step()
	if got, want := g.Rows(), []string{".#.", ".#.", ".#."}; !reflect.DeepEqual(got, want) {
		t.Errorf("gen 2 = %q, want %q", got, want)
	}
	if g.Generation() != 2 {
		t.Errorf("Generation = %d, want 2", g.Generation())
	}
}

func TestGame_Glider(t *testing.T) {
	g := NewGame(4, 4, false)
	setAll(g, [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}})

	want := [][]string{
		{"....", "#.#.", ".##.", ".#.."},
		{"....", "..#.", "#.#.", ".##."},
		{"....", ".#..", "..##", ".##."},
		{"....", "..#.", "...#", ".###"},
	}
	for i, w := range want {
		g.Step()
		if got := g.Rows(); !reflect.DeepEqual(got, w) {
			t.Errorf("gen %d = %q, want %q", i+1, got, w)
		}
	}
}

func TestGame_WrapEdges(t *testing.T) {
	// A vertical blinker on the left edge: with wrap, the horizontal phase
	// spills onto the right edge.
	g := NewGame(5, 5, true)
	setAll(g, [][2]int{{1, 0}, {2, 0}, {3, 0}})
	g.Step()
	if got, want := g.Rows()[2], "##..#"; got != want {
		t.Errorf("wrapped row = %q, want %q", got, want)
	}

	flat := NewGame(5, 5, false)
	setAll(flat, [][2]int{{1, 0}, {2, 0}, {3, 0}})
	flat.Step()
	if got, want := flat.Rows()[2], "##..."; got != want {
		t.Errorf("bounded row = %q, want %q", got, want)
	}
}

func TestGame_CellEdits(t *testing.T) {
	g := NewGame(3, 2, false)
	if g.SetOn(2, 0) {
		t.Error("SetOn outside the grid should report false")
	}
	if g.Alive(-1, 0) {
		t.Error("out-of-range cells are dead")
	}
	g.Invert(1, 2)
	if !g.Alive(1, 2) {
		t.Error("Invert should bring a dead cell to life")
	}
	g.SetOff(1, 2)
	if g.Population() != 0 {
		t.Errorf("Population = %d, want 0", g.Population())
	}
	g.SetOn(0, 0)
	g.Step()
	g.Clear()
	if g.Population() != 0 || g.Generation() != 0 {
		t.Errorf("Clear left population %d gen %d", g.Population(), g.Generation())
	}
}

func TestGame_Resize(t *testing.T) {
	g := NewGame(4, 4, false)
	setAll(g, [][2]int{{0, 0}, {3, 3}})
	small := g.Resize(2, 2)
	if !small.Alive(0, 0) || small.Population() != 1 {
		t.Errorf("Resize kept %q", small.Rows())
	}
}

func TestPresets_Apply(t *testing.T) {
	for _, name := range PresetNames() {
		if name == RandomPreset {
			continue
		}
		p, ok := LookupPreset(name)
		if !ok {
			t.Fatalf("preset %s missing", name)
		}
		g, err := p.Apply(false)
		if err != nil {
			t.Errorf("preset %s: %v", name, err)
			continue
		}
		if g.Population() != len(p.Cells) {
			t.Errorf("preset %s population %d, want %d", name, g.Population(), len(p.Cells))
		}
	}
}

func TestPresets_BlinkerOscillates(t *testing.T) {
	p, _ := LookupPreset("blinker")
	g, _ := p.Apply(false)
	start := g.Rows()
	g.Step()
	if reflect.DeepEqual(g.Rows(), start) {
		t.Error("blinker should change after one step")
	}
	g.Step()
	if !reflect.DeepEqual(g.Rows(), start) {
		t.Error("blinker should return after two steps")
	}
}
