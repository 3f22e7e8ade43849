package lineedit

import "unicode/utf8"

// Key identifies a decoded keypress.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyShiftUp
	KeyShiftDown
	KeyHome
	KeyEnd
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyTab
	KeyEscape
	KeyClearLine
	KeyInterrupt
	KeyEOF
)

// Event is one keypress. Rune is set for KeyRune only.
type Event struct {
	Key  Key
	Rune rune
}

var sequences = map[string]Key{
	"[A":    KeyUp,
	"[B":    KeyDown,
	"[C":    KeyRight,
	"[D":    KeyLeft,
	"[H":    KeyHome,
	"[F":    KeyEnd,
	"OH":    KeyHome,
	"OF":    KeyEnd,
	"[1~":   KeyHome,
	"[4~":   KeyEnd,
	"[7~":   KeyHome,
	"[8~":   KeyEnd,
	"[3~":   KeyDelete,
	"[1;2A": KeyShiftUp,
	"[1;2B": KeyShiftDown,
	"[a":    KeyShiftUp, // rxvt
	"[b":    KeyShiftDown,
}

// Decoder turns raw terminal bytes into key events. Sequences split
// across reads are held until the rest arrives.
type Decoder struct {
	pending []byte
}

// Feed appends p and returns every complete event it now holds.
func (d *Decoder) Feed(p []byte) []Event {
	d.pending = append(d.pending, p...)
	var out []Event
	for len(d.pending) > 0 {
		ev, n := Decode(d.pending)
		if n == 0 {
			break
		}
		d.pending = d.pending[n:]
		if ev.Key != KeyNone {
			out = append(out, ev)
		}
	}
	return out
}

// Flush returns a pending lone escape as KeyEscape. Call it when input
// goes quiet.
func (d *Decoder) Flush() []Event {
	if len(d.pending) == 1 && d.pending[0] == 0x1b {
		d.pending = d.pending[:0]
		return []Event{{Key: KeyEscape}}
	}
	return nil
}

// Decode reads one event from the start of b and reports how many bytes
// it used. n is 0 when b holds only the start of a sequence. Unknown
// escape sequences are consumed as KeyNone.
func Decode(b []byte) (Event, int) {
	if len(b) == 0 {
		return Event{}, 0
	}
	switch c := b[0]; c {
	case 0x1b:
		return decodeEscape(b)
	case '\r', '\n':
		return Event{Key: KeyEnter}, 1
	case '\t':
		return Event{Key: KeyTab}, 1
	case 0x7f, 0x08:
		return Event{Key: KeyBackspace}, 1
	case 0x01:
		return Event{Key: KeyHome}, 1
	case 0x05:
		return Event{Key: KeyEnd}, 1
	case 0x02:
		return Event{Key: KeyLeft}, 1
	case 0x06:
		return Event{Key: KeyRight}, 1
	case 0x03:
		return Event{Key: KeyInterrupt}, 1
	case 0x04:
		return Event{Key: KeyEOF}, 1
	case 0x15:
		return Event{Key: KeyClearLine}, 1
	default:
		if c < 0x20 {
			return Event{}, 1
		}
	}
	if !utf8.FullRune(b) {
		return Event{}, 0
	}
	r, n := utf8.DecodeRune(b)
	if r == utf8.RuneError {
		return Event{}, n
	}
	return Event{Key: KeyRune, Rune: r}, n
}

func decodeEscape(b []byte) (Event, int) {
	if len(b) < 2 {
		return Event{}, 0
	}
	switch b[1] {
	case 'O':
		if len(b) < 3 {
			return Event{}, 0
		}
		return Event{Key: sequences[string(b[1:3])]}, 3
	case '[':
		// CSI: parameter bytes then one final byte in 0x40..0x7e.
		for i := 2; i < len(b); i++ {
			if b[i] >= 0x40 && b[i] <= 0x7e {
				return Event{Key: sequences[string(b[1:i+1])]}, i + 1
			}
		}
		return Event{}, 0
	}
	// Alt+key: drop the modifier.
	return Event{Key: KeyEscape}, 1
}
