package session

// FileGroup is one renderable file section: header data plus the
// occurrence rows when the group is expanded.
type FileGroup struct {
	FilePath    string
	Count       int
	Expanded    bool
	Occurrences []Occurrence // nil unless Expanded
}

// Project combines a grouping with expansion state into the ordered
// view a renderer consumes. It holds no state of its own; callers must
// re-project after any operation that touches either input.
func Project(g Grouping, e *Expansion) []FileGroup {
	groups := make([]FileGroup, 0, g.Len())
	for _, path := range g.Files() {
		occs := g.Occurrences(path)
		fg := FileGroup{
			FilePath: path,
			Count:    len(occs),
			Expanded: e.IsExpanded(path),
		}
		if fg.Expanded {
			fg.Occurrences = occs
		}
		groups = append(groups, fg)
	}
	return groups
}
