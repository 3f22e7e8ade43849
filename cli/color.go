package cli

import (
	"github.com/fatih/color"

	"github.com/nathoo/termfolio/render"
)

var (
	colorHeading = color.New(color.FgCyan, color.Bold)
	colorEmph    = color.New(color.Bold)
	colorHint    = color.New(color.FgHiBlack)
	colorError   = color.New(color.FgRed)
	colorInput   = color.New(color.FgYellow)
	colorCommand = color.New(color.FgHiCyan, color.Underline)
	colorLink    = color.New(color.FgBlue, color.Underline)
	colorInsert  = color.New(color.FgGreen, color.Bold)
	colorDelete  = color.New(color.FgRed, color.CrossedOut)
	colorBoard   = color.New(color.FgHiYellow)
	colorEcho    = color.New(color.FgGreen)
	colorCaret   = color.New(color.ReverseVideo)
)

var classColors = map[string]*color.Color{
	"heading":      colorHeading,
	"emph":         colorEmph,
	"hint":         colorHint,
	"count":        colorHint,
	"error":        colorError,
	"input":        colorInput,
	"command":      colorCommand,
	"diff-insert":  colorInsert,
	"diff-delete":  colorDelete,
	"conway-board": colorBoard,
}

// ColorStyler renders element classes with ANSI colours. When colour is
// off (not a terminal, NO_COLOR set) it falls back to plain markers.
type ColorStyler struct{}

func (ColorStyler) Style(class, s string) string {
	if color.NoColor {
		return render.PlainStyler{}.Style(class, s)
	}
	if c, ok := classColors[class]; ok {
		return c.Sprint(s)
	}
	return s
}

func (ColorStyler) Link(text, href string) string {
	if color.NoColor {
		return render.PlainStyler{}.Link(text, href)
	}
	if href == "" || href == text {
		return colorLink.Sprint(text)
	}
	return colorLink.Sprint(text) + colorHint.Sprint(" <"+href+">")
}
