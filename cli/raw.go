package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"

	"github.com/nathoo/termfolio/engine/command"
	"github.com/nathoo/termfolio/engine/lineedit"
	"github.com/nathoo/termfolio/types"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	clearLine   = "\r\x1b[K"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// RunRaw puts the terminal on fd into raw mode and runs the line editor
// until Ctrl+C or Ctrl+D.
func (c *CLI) RunRaw(fd int) error {
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, oldState)
	return c.runEditor()
}

// rawSession is the state shared between the key loop and the frame
// listener.
type rawSession struct {
	mu        sync.Mutex
	c         *CLI
	ed        *lineedit.Editor
	lastInput string
	submitted bool
	note      string // completion candidates under the prompt

	out    string // last rendering of the recorder
	outRev uint64
	outOK  bool
}

func (c *CLI) runEditor() error {
	s := &rawSession{c: c, ed: lineedit.New(c.Engine)}

	done := make(chan struct{})
	defer close(done)
	if c.Frames != nil {
		go s.listen(done)
	}

	s.mu.Lock()
	s.redraw()
	s.mu.Unlock()

	var dec lineedit.Decoder
	buf := make([]byte, 256)
	for {
		n, err := c.In.Read(buf)
		if n > 0 {
			if quit := s.handle(dec.Feed(buf[:n])); quit {
				s.write("\r\n")
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.write("\r\n")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

func (s *rawSession) listen(done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case f := <-s.c.Frames:
			s.frame(f)
		}
	}
}

func (s *rawSession) frame(f types.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted && s.c.Engine.ApplyFrame(s.c.Recorder, f) {
		s.redraw()
	}
}

// handle applies key events; it reports true when the session should end.
func (s *rawSession) handle(events []lineedit.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range events {
		switch s.ed.HandleKey(ev) {
		case lineedit.ActionRedraw:
			s.note = ""
			s.drawPrompt()
		case lineedit.ActionSubmit:
			raw := s.ed.Text()
			out := s.c.Engine.Submit(raw)
			if out.ClearInput {
				s.ed.Reset()
			}
			s.lastInput = raw
			s.submitted = true
			s.note = ""
			s.redraw()
		case lineedit.ActionComplete:
			s.complete()
		case lineedit.ActionInterrupt, lineedit.ActionEOF:
			return true
		}
	}
	return false
}

func (s *rawSession) complete() {
	text := s.ed.Text()
	cands := s.c.Engine.Complete(text)
	switch len(cands) {
	case 0:
		return
	case 1:
		s.ed.SetText(cands[0] + " ")
		s.note = ""
	default:
		if p := command.CommonPrefix(cands); len(p) > len(text) {
			s.ed.SetText(p)
		}
		s.note = strings.Join(cands, "  ")
	}
	s.redraw()
}

// redraw repaints the whole screen: echo, output, prompt.
func (s *rawSession) redraw() {
	var b strings.Builder
	b.WriteString(clearScreen)
	if s.submitted {
		b.WriteString(colorEcho.Sprint("> " + s.lastInput))
		b.WriteString("\n\n")
		b.WriteString(s.output())
	} else if len(s.c.Greeting) > 0 {
		b.WriteString(s.c.Writer.RenderAll(s.c.Greeting))
	}
	b.WriteString("\n\n")
	if s.note != "" {
		b.WriteString(colorHint.Sprint(s.note))
		b.WriteString("\n")
	}
	s.write(b.String())
	s.drawPrompt()
}

// output reuses the last rendering while the recorder is unchanged, so
// completion and editing redraws skip the text layout.
func (s *rawSession) output() string {
	if rev := s.c.Recorder.Revision(); !s.outOK || rev != s.outRev {
		s.out, s.outRev, s.outOK = s.c.output(), rev, true
	}
	return s.out
}

func (s *rawSession) drawPrompt() {
	before, under, after := s.ed.Caret()
	s.write(clearLine + colorEcho.Sprint("$ ") + before + colorCaret.Sprint(under) + after)
}

// write converts newlines for a raw terminal.
func (s *rawSession) write(text string) {
	io.WriteString(s.c.Out, strings.ReplaceAll(text, "\n", "\r\n"))
}
