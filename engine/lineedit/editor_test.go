package lineedit

import "testing"

type fakeHistory struct {
	entries []string
	cursor  int
}

func (h *fakeHistory) HistoryPrev() (string, bool) {
	if h.cursor == 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

func (h *fakeHistory) HistoryNext() (string, bool) {
	if h.cursor >= len(h.entries)-1 {
		return "", false
	}
	h.cursor++
	return h.entries[h.cursor], true
}

func typeText(e *Editor, s string) {
	for _, r := range s {
		e.HandleKey(Event{Key: KeyRune, Rune: r})
	}
}

func TestEditor_InsertAndMove(t *testing.T) {
	e := New(nil)
	typeText(e, "hllo")
	e.Home()
	e.Right()
	e.Insert('e')

	if got := e.Text(); got != "hello" {
		t.Errorf("Text = %q, want hello", got)
	}
	if e.Pos() != 2 {
		t.Errorf("Pos = %d, want 2", e.Pos())
	}
}

func TestEditor_Clamping(t *testing.T) {
	e := New(nil)
	if e.HandleKey(Event{Key: KeyLeft}) != ActionNone {
		t.Error("Left at 0 should do nothing")
	}
	typeText(e, "ab")
	if e.HandleKey(Event{Key: KeyRight}) != ActionNone {
		t.Error("Right at end should do nothing")
	}
	if e.Pos() != 2 {
		t.Errorf("Pos = %d", e.Pos())
	}
}

func TestEditor_BackspaceAndDelete(t *testing.T) {
	e := New(nil)
	typeText(e, "abcd")
	e.Left()
	e.Left()

	e.HandleKey(Event{Key: KeyBackspace})
	if e.Text() != "acd" || e.Pos() != 1 {
		t.Errorf("after backspace: %q pos %d", e.Text(), e.Pos())
	}
	e.HandleKey(Event{Key: KeyDelete})
	if e.Text() != "ad" || e.Pos() != 1 {
		t.Errorf("after delete: %q pos %d", e.Text(), e.Pos())
	}

	e.Home()
	if e.Backspace() {
		t.Error("Backspace at 0 should fail")
	}
	e.End()
	if e.Delete() {
		t.Error("Delete at end should fail")
	}
}

func TestEditor_PlainUpDownJump(t *testing.T) {
	e := New(&fakeHistory{entries: []string{"about"}, cursor: 1})
	typeText(e, "skills")

	e.HandleKey(Event{Key: KeyUp})
	if e.Pos() != 0 || e.Text() != "skills" {
		t.Errorf("Up: %q pos %d", e.Text(), e.Pos())
	}
	e.HandleKey(Event{Key: KeyDown})
	if e.Pos() != 6 {
		t.Errorf("Down: pos %d", e.Pos())
	}
}

func TestEditor_ShiftRecall(t *testing.T) {
	h := &fakeHistory{entries: []string{"about", "skills"}, cursor: 2}
	e := New(h)
	typeText(e, "draft")

	if a := e.HandleKey(Event{Key: KeyShiftUp}); a != ActionRedraw {
		t.Fatalf("ShiftUp = %v", a)
	}
	if e.Text() != "skills" || e.Pos() != 6 {
		t.Errorf("recall: %q pos %d", e.Text(), e.Pos())
	}

	e.HandleKey(Event{Key: KeyShiftUp})
	if e.Text() != "about" {
		t.Errorf("recall: %q", e.Text())
	}

	// At the oldest entry nothing changes, including an edited buffer.
	e.Insert('!')
	if a := e.HandleKey(Event{Key: KeyShiftUp}); a != ActionNone {
		t.Errorf("ShiftUp at oldest = %v", a)
	}
	if e.Text() != "about!" {
		t.Errorf("buffer overwritten: %q", e.Text())
	}
}

func TestEditor_ShiftWithoutHistory(t *testing.T) {
	e := New(nil)
	typeText(e, "x")
	if a := e.HandleKey(Event{Key: KeyShiftDown}); a != ActionNone {
		t.Errorf("ShiftDown = %v", a)
	}
}

func TestEditor_Actions(t *testing.T) {
	e := New(nil)
	tests := []struct {
		key  Key
		want Action
	}{
		{KeyEnter, ActionSubmit},
		{KeyTab, ActionComplete},
		{KeyInterrupt, ActionInterrupt},
		{KeyEOF, ActionEOF},
		{KeyEscape, ActionNone},
	}
	for _, tt := range tests {
		if got := e.HandleKey(Event{Key: tt.key}); got != tt.want {
			t.Errorf("key %d: got %v, want %v", tt.key, got, tt.want)
		}
	}

	typeText(e, "ab")
	e.Home()
	if got := e.HandleKey(Event{Key: KeyEOF}); got != ActionRedraw || e.Text() != "b" {
		t.Errorf("Ctrl+D on text: %v %q", got, e.Text())
	}
	if got := e.HandleKey(Event{Key: KeyClearLine}); got != ActionRedraw || e.Text() != "" {
		t.Errorf("Ctrl+U: %v %q", got, e.Text())
	}
}

func TestEditor_Caret(t *testing.T) {
	e := New(nil)
	typeText(e, "héllo")

	before, under, after := e.Caret()
	if before != "héllo" || under != " " || after != "" {
		t.Errorf("end caret: %q %q %q", before, under, after)
	}

	e.Home()
	e.Right()
	before, under, after = e.Caret()
	if before != "h" || under != "é" || after != "llo" {
		t.Errorf("mid caret: %q %q %q", before, under, after)
	}
}
