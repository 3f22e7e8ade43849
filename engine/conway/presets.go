package conway

import (
	"fmt"
	"sort"
)

// Preset is a starting pattern together with the grid it fits.
type Preset struct {
	Name   string
	Width  int
	Height int
	Cells  [][2]int // (row, col)
}

// DefaultPreset is shown by a bare "conway".
const DefaultPreset = "glider"

var presets = map[string]Preset{
	"glider": {
		Name: "glider", Width: 10, Height: 10,
		Cells: [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	},
	"blinker": {
		Name: "blinker", Width: 5, Height: 5,
		Cells: [][2]int{{1, 2}, {2, 2}, {3, 2}},
	},
	"pentadecathlon": {
		Name: "pentadecathlon", Width: 11, Height: 18,
		Cells: [][2]int{
			{4, 5}, {5, 5}, {6, 4}, {6, 6}, {7, 5}, {8, 5},
			{9, 5}, {10, 5}, {11, 4}, {11, 6}, {12, 5}, {13, 5},
		},
	},
	"spaceship": {
		Name: "spaceship", Width: 25, Height: 7,
		Cells: [][2]int{{1, 1}, {3, 1}, {4, 2}, {4, 3}, {4, 4}, {4, 5}, {3, 5}, {2, 5}, {1, 4}},
	},
}

// RandomPreset names the seeded soup pattern.
const RandomPreset = "random"

// LookupPreset returns a named preset.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames lists every preset name including "random", sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets)+1)
	for n := range presets {
		names = append(names, n)
	}
	names = append(names, RandomPreset)
	sort.Strings(names)
	return names
}

// Apply builds a fresh game holding the preset.
func (p Preset) Apply(wrap bool) (*Game, error) {
	g := NewGame(p.Width, p.Height, wrap)
	for _, c := range p.Cells {
		if !g.SetOn(c[0], c[1]) {
			return nil, fmt.Errorf("preset %s: cell %v outside %dx%d", p.Name, c, p.Width, p.Height)
		}
	}
	return g, nil
}
