package command

// Child is one entry of a branch, matched either by exact name or by a
// predicate over the token.
type Child struct {
	Name  string            // Named children
	Desc  string            // Predicate children, e.g. "<index>"
	Match func(string) bool // Predicate children
	Node  Node
}

// Named matches a token equal to name.
func Named(name string, n Node) Child {
	return Child{Name: name, Node: n}
}

// Predicate matches any token fn accepts. desc names the accepted shape
// in help and error output.
func Predicate(desc string, fn func(string) bool, n Node) Child {
	return Child{Desc: desc, Match: fn, Node: n}
}

// IsPredicate reports whether the child matches by predicate.
func (c Child) IsPredicate() bool {
	return c.Match != nil
}

// Matches tests tok against the child.
func (c Child) Matches(tok string) bool {
	if c.Match != nil {
		return c.Match(tok)
	}
	return c.Name == tok
}

// Label is the name, or the predicate description.
func (c Child) Label() string {
	if c.Match != nil {
		return c.Desc
	}
	return c.Name
}

// IsInt accepts base-10 integer tokens, sign allowed. Values too large
// for an int still match; the leaf reports them as out of range.
func IsInt(tok string) bool {
	if tok != "" && (tok[0] == '+' || tok[0] == '-') {
		tok = tok[1:]
	}
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return false
		}
	}
	return true
}
