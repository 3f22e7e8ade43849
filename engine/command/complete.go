package command

import (
	"sort"
	"strings"
)

// Complete returns full-line candidates for input: the named children of
// the deepest branch the complete tokens reach, filtered by the partial
// trailing token. Predicate children are never offered.
func Complete(root *Branch, input string) []string {
	fields := strings.Fields(strings.ToLower(input))
	partial := ""
	if len(fields) > 0 && !strings.HasSuffix(input, " ") && !strings.HasSuffix(input, "\t") {
		partial = fields[len(fields)-1]
		fields = fields[:len(fields)-1]
	}

	b := root
	for _, tok := range fields {
		c, ok := b.Lookup(tok)
		if !ok {
			return nil
		}
		next, ok := c.Node.(*Branch)
		if !ok {
			return nil
		}
		b = next
	}

	prefix := strings.Join(fields, " ")
	if prefix != "" {
		prefix += " "
	}
	var out []string
	for _, c := range b.Children {
		if c.IsPredicate() || !strings.HasPrefix(c.Name, partial) {
			continue
		}
		out = append(out, prefix+c.Name)
	}
	sort.Strings(out)
	return out
}

// CommonPrefix returns the longest prefix shared by every candidate.
func CommonPrefix(cands []string) string {
	if len(cands) == 0 {
		return ""
	}
	p := cands[0]
	for _, c := range cands[1:] {
		for !strings.HasPrefix(c, p) {
			p = p[:len(p)-1]
		}
	}
	return p
}
