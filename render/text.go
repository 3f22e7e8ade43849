package render

import (
	"io"
	"strings"

	"github.com/nathoo/termfolio/types"
)

// Styler decorates text for a particular terminal. Classes are the
// element style hints ("error", "heading", "diff-insert", ...).
type Styler interface {
	Style(class, s string) string
	Link(text, href string) string
}

// PlainStyler renders without escape codes. Diff classes get word-diff
// markers so the information survives.
type PlainStyler struct{}

func (PlainStyler) Style(class, s string) string {
	switch class {
	case "diff-insert":
		return "{+" + s + "+}"
	case "diff-delete":
		return "[-" + s + "-]"
	}
	return s
}

func (PlainStyler) Link(text, href string) string {
	if href == "" || href == text {
		return text
	}
	return text + " <" + href + ">"
}

// TextWriter lays element trees out as terminal lines.
type TextWriter struct {
	Styler Styler
}

// NewTextWriter returns a writer using s, or PlainStyler when s is nil.
func NewTextWriter(s Styler) *TextWriter {
	if s == nil {
		s = PlainStyler{}
	}
	return &TextWriter{Styler: s}
}

// Render lays out one element.
func (w *TextWriter) Render(el types.Element) string {
	var lines []string
	w.block(&lines, el, "")
	return strings.Join(lines, "\n")
}

// RenderAll lays out elements separated by blank lines.
func (w *TextWriter) RenderAll(els []types.Element) string {
	parts := make([]string, 0, len(els))
	for _, el := range els {
		parts = append(parts, w.Render(el))
	}
	return strings.Join(parts, "\n\n")
}

// Write renders els to out followed by a newline.
func (w *TextWriter) Write(out io.Writer, els []types.Element) error {
	if len(els) == 0 {
		return nil
	}
	_, err := io.WriteString(out, w.RenderAll(els)+"\n")
	return err
}

func isInline(k types.ElementKind) bool {
	switch k {
	case types.ElemText, types.ElemSpan, types.ElemLink, types.ElemCommand, types.ElemBreak:
		return true
	}
	return false
}

func (w *TextWriter) block(lines *[]string, el types.Element, indent string) {
	switch el.Kind {
	case types.ElemHeading:
		if len(*lines) > 0 {
			*lines = append(*lines, "")
		}
		*lines = append(*lines, indent+w.Styler.Style("heading", el.Text))
	case types.ElemParagraph, types.ElemFragment:
		w.flow(lines, el.Children, indent, indent)
	case types.ElemList:
		for _, c := range el.Children {
			kids := c.Children
			if c.Kind != types.ElemItem {
				kids = []types.Element{c}
			}
			w.flow(lines, kids, indent+"  - ", indent+"    ")
		}
	case types.ElemItem:
		w.flow(lines, el.Children, indent+"- ", indent+"  ")
	case types.ElemPre:
		for _, l := range strings.Split(el.Text, "\n") {
			*lines = append(*lines, indent+w.Styler.Style(el.Class, l))
		}
	default:
		w.flow(lines, []types.Element{el}, indent, indent)
	}
}

// flow lays out a child list: runs of inline children join into one
// line, block children are nested under rest.
func (w *TextWriter) flow(lines *[]string, children []types.Element, first, rest string) {
	prefix := first
	var cur strings.Builder
	started := false
	flush := func() {
		if !started {
			return
		}
		*lines = append(*lines, prefix+cur.String())
		prefix = rest
		cur.Reset()
		started = false
	}

	for _, c := range children {
		switch {
		case c.Kind == types.ElemBreak:
			started = true
			flush()
		case isInline(c.Kind):
			cur.WriteString(w.inline(c))
			started = true
		default:
			flush()
			if prefix != rest {
				*lines = append(*lines, strings.TrimRight(prefix, " "))
				prefix = rest
			}
			w.block(lines, c, rest)
		}
	}
	flush()
}

func (w *TextWriter) inline(el types.Element) string {
	var s string
	switch el.Kind {
	case types.ElemLink:
		return w.Styler.Link(el.Text, el.Href)
	case types.ElemCommand:
		return w.Styler.Style("command", el.Text)
	case types.ElemSpan:
		s = el.Text
		for _, c := range el.Children {
			s += w.inline(c)
		}
		return w.Styler.Style(el.Class, s)
	case types.ElemBreak:
		return "\n"
	}
	s = el.Text
	for _, c := range el.Children {
		s += w.inline(c)
	}
	if el.Class != "" {
		return w.Styler.Style(el.Class, s)
	}
	return s
}
