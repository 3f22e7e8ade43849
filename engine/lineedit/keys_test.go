package lineedit

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Event
		n    int
	}{
		{"letter", "a", Event{Key: KeyRune, Rune: 'a'}, 1},
		{"utf8", "é", Event{Key: KeyRune, Rune: 'é'}, 2},
		{"enter cr", "\r", Event{Key: KeyEnter}, 1},
		{"backspace", "\x7f", Event{Key: KeyBackspace}, 1},
		{"tab", "\t", Event{Key: KeyTab}, 1},
		{"ctrl-c", "\x03", Event{Key: KeyInterrupt}, 1},
		{"up", "\x1b[A", Event{Key: KeyUp}, 3},
		{"left", "\x1b[D", Event{Key: KeyLeft}, 3},
		{"shift-up", "\x1b[1;2A", Event{Key: KeyShiftUp}, 6},
		{"shift-down", "\x1b[1;2B", Event{Key: KeyShiftDown}, 6},
		{"delete", "\x1b[3~", Event{Key: KeyDelete}, 4},
		{"home ss3", "\x1bOH", Event{Key: KeyHome}, 3},
		{"unknown csi", "\x1b[15~", Event{}, 5},
		{"partial csi", "\x1b[1;", Event{}, 0},
		{"lone escape", "\x1b", Event{}, 0},
		{"partial utf8", "\xc3", Event{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := Decode([]byte(tt.in))
			if got != tt.want || n != tt.n {
				t.Errorf("Decode(%q) = %+v, %d; want %+v, %d", tt.in, got, n, tt.want, tt.n)
			}
		})
	}
}

func TestDecoder_SplitSequence(t *testing.T) {
	var d Decoder
	if evs := d.Feed([]byte("ab\x1b[1")); len(evs) != 2 {
		t.Fatalf("first feed: %+v", evs)
	}
	evs := d.Feed([]byte(";2Ac"))
	if len(evs) != 2 || evs[0].Key != KeyShiftUp || evs[1].Rune != 'c' {
		t.Errorf("second feed: %+v", evs)
	}
}

func TestDecoder_FlushLoneEscape(t *testing.T) {
	var d Decoder
	if evs := d.Feed([]byte{0x1b}); len(evs) != 0 {
		t.Fatalf("lone escape decoded early: %+v", evs)
	}
	evs := d.Flush()
	if len(evs) != 1 || evs[0].Key != KeyEscape {
		t.Errorf("Flush = %+v", evs)
	}
	if evs := d.Flush(); evs != nil {
		t.Errorf("second Flush = %+v", evs)
	}
}
