package datatable

// ExpandConfig controls expandable detail rows. A row is expandable when
// Enabled is set and either the predicate returns true for it, or no
// predicate is given but a render func is.
type ExpandConfig[T any] struct {
	Enabled      bool
	RowHasExpand func(row T) bool
	Render       func(row T) string
}

// RowExpandable reports whether a given row can expand.
func (c ExpandConfig[T]) RowExpandable(row T) bool {
	if !c.Enabled {
		return false
	}
	if c.RowHasExpand != nil {
		return c.RowHasExpand(row)
	}
	return c.Render != nil
}

// ExpandState tracks which row is expanded. The state is a single nullable
// key, not a set: expanding a second row collapses the first.
type ExpandState struct {
	key *string
}

// Toggle expands the row with the given key, or collapses it if it is the
// one currently expanded. Returns whether the row ends up expanded.
func (e *ExpandState) Toggle(key string) bool {
	if e.key != nil && *e.key == key {
		e.key = nil
		return false
	}
	e.key = &key
	return true
}

// Expanded returns the currently expanded row key, if any.
func (e *ExpandState) Expanded() (string, bool) {
	if e.key == nil {
		return "", false
	}
	return *e.key, true
}

// Collapse clears the expansion state.
func (e *ExpandState) Collapse() {
	e.key = nil
}
