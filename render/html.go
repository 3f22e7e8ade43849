package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/nathoo/termfolio/types"
)

//go:embed templates/element.html.tmpl
var templateFS embed.FS

var kindNames = map[types.ElementKind]string{
	types.ElemFragment:  "fragment",
	types.ElemHeading:   "heading",
	types.ElemParagraph: "paragraph",
	types.ElemText:      "text",
	types.ElemList:      "list",
	types.ElemItem:      "item",
	types.ElemLink:      "link",
	types.ElemCommand:   "command",
	types.ElemSpan:      "span",
	types.ElemPre:       "pre",
	types.ElemBreak:     "break",
}

// KindName returns the lower-case name of an element kind.
func KindName(k types.ElementKind) string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "text"
}

// HTMLWriter renders element trees as HTML fragments.
type HTMLWriter struct {
	tmpl *template.Template
}

// NewHTMLWriter parses the embedded element template.
func NewHTMLWriter() (*HTMLWriter, error) {
	t, err := template.New("element").
		Funcs(template.FuncMap{"kind": func(el types.Element) string { return KindName(el.Kind) }}).
		ParseFS(templateFS, "templates/element.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing element template: %w", err)
	}
	return &HTMLWriter{tmpl: t}, nil
}

// Write renders el to out.
func (w *HTMLWriter) Write(out io.Writer, el types.Element) error {
	return w.tmpl.ExecuteTemplate(out, "el", el)
}

// Render renders els into one HTML fragment.
func (w *HTMLWriter) Render(els []types.Element) (string, error) {
	var buf bytes.Buffer
	for _, el := range els {
		if err := w.Write(&buf, el); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}
