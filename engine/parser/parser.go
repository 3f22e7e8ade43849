// Package parser splits a submitted console line into tokens.
// Intentionally dumb: no quoting, no escapes, just whitespace.
package parser

import (
	"strings"
)

// Tokenize trims the line, lower-cases it and splits it on runs of
// whitespace.
func Tokenize(line string) []string {
	return strings.Fields(strings.ToLower(strings.TrimSpace(line)))
}

// Cursor is a read-only forward iterator over the tokens of one line.
// It keeps the original-case spelling of each token alongside the
// normalized one so leaf actions can receive raw arguments.
type Cursor struct {
	tokens []string
	raw    []string
	pos    int
}

// NewCursor tokenizes line and positions the cursor at the first token.
func NewCursor(line string) *Cursor {
	raw := strings.Fields(strings.TrimSpace(line))
	tokens := make([]string, len(raw))
	for i, r := range raw {
		tokens[i] = strings.ToLower(r)
	}
	return &Cursor{tokens: tokens, raw: raw}
}

// Empty reports whether the line had no tokens at all.
func (c *Cursor) Empty() bool {
	return len(c.tokens) == 0
}

// Tokens returns a copy of the normalized tokens.
func (c *Cursor) Tokens() []string {
	return append([]string(nil), c.tokens...)
}

// Current returns the normalized token under the cursor.
func (c *Cursor) Current() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.pos], true
}

// CurrentRaw returns the original-case token under the cursor.
func (c *Cursor) CurrentRaw() (string, bool) {
	if c.pos >= len(c.raw) {
		return "", false
	}
	return c.raw[c.pos], true
}

// PeekRaw returns the original-case token after the cursor, if any.
func (c *Cursor) PeekRaw() (string, bool) {
	if c.pos+1 >= len(c.raw) {
		return "", false
	}
	return c.raw[c.pos+1], true
}

// RestRaw returns the original-case tokens after the cursor.
func (c *Cursor) RestRaw() []string {
	if c.pos+1 >= len(c.raw) {
		return nil
	}
	return append([]string(nil), c.raw[c.pos+1:]...)
}

// Advance moves to the next token. It reports false, without moving,
// when there is no next token.
func (c *Cursor) Advance() bool {
	if c.pos+1 >= len(c.tokens) {
		return false
	}
	c.pos++
	return true
}

// Consumed returns the normalized tokens up to and including the
// current one, joined by single spaces. Used to echo the offending
// portion of a line in error output.
func (c *Cursor) Consumed() string {
	if len(c.tokens) == 0 {
		return ""
	}
	end := min(c.pos+1, len(c.tokens))
	return strings.Join(c.tokens[:end], " ")
}
