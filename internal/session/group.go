package session

// Grouping partitions occurrences by file path. Files appear in
// first-seen order and each file's occurrences keep their relative
// order from the flat input; nothing is re-sorted by line or column.
type Grouping struct {
	order  []string
	groups map[string][]Occurrence
}

// Group builds a grouping from a flat occurrence list. It is a stable
// partition: every input occurrence lands in exactly one group and no
// empty groups exist.
func Group(occs []Occurrence) Grouping {
	g := Grouping{groups: make(map[string][]Occurrence, len(occs))}
	for _, o := range occs {
		if _, seen := g.groups[o.FilePath]; !seen {
			g.order = append(g.order, o.FilePath)
		}
		g.groups[o.FilePath] = append(g.groups[o.FilePath], o)
	}
	return g
}

// Files returns the group keys in first-seen order.
func (g Grouping) Files() []string {
	return g.order
}

// Occurrences returns the occurrences grouped under path, nil if the
// path has no group.
func (g Grouping) Occurrences(path string) []Occurrence {
	return g.groups[path]
}

// Len is the number of file groups.
func (g Grouping) Len() int {
	return len(g.order)
}
