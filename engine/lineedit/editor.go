// Package lineedit is a terminal line editor: a rune buffer with a caret,
// driven by decoded key events.
package lineedit

// Navigator walks a command history. ok is false when the position did not
// change, in which case the buffer is left untouched.
type Navigator interface {
	HistoryPrev() (entry string, ok bool)
	HistoryNext() (entry string, ok bool)
}

// Action tells the caller what a key did beyond editing the buffer.
type Action int

const (
	ActionNone      Action = iota // key ignored
	ActionRedraw                  // buffer or caret changed
	ActionSubmit                  // Enter
	ActionComplete                // Tab
	ActionInterrupt               // Ctrl+C
	ActionEOF                     // Ctrl+D on an empty line
)

// Editor holds one line of input and a caret position in [0, len].
type Editor struct {
	buf []rune
	pos int
	nav Navigator
}

// New returns an empty editor. nav may be nil, in which case history keys
// are ignored.
func New(nav Navigator) *Editor {
	return &Editor{nav: nav}
}

// Text returns the current line.
func (e *Editor) Text() string { return string(e.buf) }

// Pos returns the caret position in runes.
func (e *Editor) Pos() int { return e.pos }

// SetText replaces the line and moves the caret to its end.
func (e *Editor) SetText(s string) {
	e.buf = []rune(s)
	e.pos = len(e.buf)
}

// Reset empties the line.
func (e *Editor) Reset() {
	e.buf = e.buf[:0]
	e.pos = 0
}

// Insert adds r at the caret.
func (e *Editor) Insert(r rune) {
	e.buf = append(e.buf, 0)
	copy(e.buf[e.pos+1:], e.buf[e.pos:])
	e.buf[e.pos] = r
	e.pos++
}

// Left moves the caret back one rune.
func (e *Editor) Left() bool {
	if e.pos == 0 {
		return false
	}
	e.pos--
	return true
}

// Right moves the caret forward one rune.
func (e *Editor) Right() bool {
	if e.pos >= len(e.buf) {
		return false
	}
	e.pos++
	return true
}

// Home moves the caret to the start of the line.
func (e *Editor) Home() bool {
	moved := e.pos != 0
	e.pos = 0
	return moved
}

// End moves the caret to the end of the line.
func (e *Editor) End() bool {
	moved := e.pos != len(e.buf)
	e.pos = len(e.buf)
	return moved
}

// Backspace removes the rune before the caret.
func (e *Editor) Backspace() bool {
	if e.pos == 0 {
		return false
	}
	e.buf = append(e.buf[:e.pos-1], e.buf[e.pos:]...)
	e.pos--
	return true
}

// Delete removes the rune under the caret.
func (e *Editor) Delete() bool {
	if e.pos >= len(e.buf) {
		return false
	}
	e.buf = append(e.buf[:e.pos], e.buf[e.pos+1:]...)
	return true
}

// Caret splits the line around the caret. under is a single space when the
// caret sits past the last rune.
func (e *Editor) Caret() (before, under, after string) {
	before = string(e.buf[:e.pos])
	if e.pos >= len(e.buf) {
		return before, " ", ""
	}
	return before, string(e.buf[e.pos]), string(e.buf[e.pos+1:])
}

// HandleKey applies ev to the buffer.
func (e *Editor) HandleKey(ev Event) Action {
	switch ev.Key {
	case KeyRune:
		e.Insert(ev.Rune)
		return ActionRedraw
	case KeyLeft:
		return redrawIf(e.Left())
	case KeyRight:
		return redrawIf(e.Right())
	case KeyUp, KeyHome:
		return redrawIf(e.Home())
	case KeyDown, KeyEnd:
		return redrawIf(e.End())
	case KeyBackspace:
		return redrawIf(e.Backspace())
	case KeyDelete:
		return redrawIf(e.Delete())
	case KeyClearLine:
		if len(e.buf) == 0 {
			return ActionNone
		}
		e.Reset()
		return ActionRedraw
	case KeyShiftUp:
		return e.recall(e.prev)
	case KeyShiftDown:
		return e.recall(e.next)
	case KeyEnter:
		return ActionSubmit
	case KeyTab:
		return ActionComplete
	case KeyInterrupt:
		return ActionInterrupt
	case KeyEOF:
		if len(e.buf) == 0 {
			return ActionEOF
		}
		return redrawIf(e.Delete())
	}
	return ActionNone
}

func (e *Editor) prev() (string, bool) { return e.nav.HistoryPrev() }
func (e *Editor) next() (string, bool) { return e.nav.HistoryNext() }

func (e *Editor) recall(move func() (string, bool)) Action {
	if e.nav == nil {
		return ActionNone
	}
	entry, ok := move()
	if !ok {
		return ActionNone
	}
	e.SetText(entry)
	return ActionRedraw
}

func redrawIf(changed bool) Action {
	if changed {
		return ActionRedraw
	}
	return ActionNone
}
