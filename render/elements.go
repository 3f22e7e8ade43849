package render

import "github.com/nathoo/termfolio/types"

// Element constructors. They keep registry and template code readable;
// nothing here carries behaviour.

func Fragment(class string, children ...types.Element) types.Element {
	return types.Element{Kind: types.ElemFragment, Class: class, Children: children}
}

func Heading(text string) types.Element {
	return types.Element{Kind: types.ElemHeading, Text: text}
}

func Para(children ...types.Element) types.Element {
	return types.Element{Kind: types.ElemParagraph, Children: children}
}

func Text(s string) types.Element {
	return types.Element{Kind: types.ElemText, Text: s}
}

func Span(class, s string) types.Element {
	return types.Element{Kind: types.ElemSpan, Class: class, Text: s}
}

func List(items ...types.Element) types.Element {
	return types.Element{Kind: types.ElemList, Children: items}
}

func Item(children ...types.Element) types.Element {
	return types.Element{Kind: types.ElemItem, Children: children}
}

func Link(text, href string) types.Element {
	return types.Element{Kind: types.ElemLink, Text: text, Href: href}
}

// Command is a clickable element; activating it submits cmd.
func Command(text, cmd string) types.Element {
	return types.Element{Kind: types.ElemCommand, Text: text, Command: cmd}
}

func Pre(class, s string) types.Element {
	return types.Element{Kind: types.ElemPre, Class: class, Text: s}
}

func Break() types.Element {
	return types.Element{Kind: types.ElemBreak}
}
