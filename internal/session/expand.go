package session

// Expansion tracks which file groups are expanded. A path with no
// entry reads as collapsed. It is owned by a single session; a new
// scan replaces it rather than merging into it.
type Expansion struct {
	expanded map[string]bool
}

func NewExpansion() *Expansion {
	return &Expansion{expanded: make(map[string]bool)}
}

// Toggle flips the flag for path. An unseen path counts as collapsed,
// so toggling it yields expanded.
func (e *Expansion) Toggle(path string) {
	e.expanded[path] = !e.expanded[path]
}

// ExpandAll marks every given path expanded. Paths outside the given
// set are left untouched.
func (e *Expansion) ExpandAll(paths []string) {
	for _, p := range paths {
		e.expanded[p] = true
	}
}

// CollapseAll drops every flag, returning to the all-collapsed default.
func (e *Expansion) CollapseAll() {
	e.expanded = make(map[string]bool)
}

func (e *Expansion) IsExpanded(path string) bool {
	return e.expanded[path]
}
