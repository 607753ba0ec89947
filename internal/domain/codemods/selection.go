package codemods

// Selection is the set of names chosen for a rewrite.
type Selection map[string]bool

// NewSelection creates a Selection from names.
func NewSelection(names ...string) Selection {
	s := make(Selection, len(names))
	for _, name := range names {
		s[name] = true
	}

	return s
}

// Len returns the number of selected names.
func (s Selection) Len() int {
	return len(s)
}
