package datatable

import (
	"io"
	"time"
)

// State is what the table body renders.
type State int

const (
	StateRows State = iota
	StateLoading
	StateEmpty
)

// Table is a generic, presentation-agnostic table engine: search (debounced),
// column filters, server-driven pagination, CSV export and expandable rows.
// It owns no data fetch; data and paging state are supplied by the caller,
// and the OnFilter/OnPageChange callbacks are the caller's re-fetch signals.
type Table[T any] struct {
	Title      string
	Columns    []Column[T]
	Data       []T
	Loading    bool
	Pagination Pagination
	Expand     ExpandConfig[T]

	OnFilter     func(filters FilterSet)
	OnPageChange func(page int)

	filters  FilterSet
	searcher *Debouncer
	expand   ExpandState
}

// New builds a table with the standard 300ms search debounce.
func New[T any](title string, columns []Column[T]) *Table[T] {
	return NewWithDebounce[T](title, columns, SearchDebounce)
}

// NewWithDebounce builds a table with a caller-chosen search delay.
func NewWithDebounce[T any](title string, columns []Column[T], delay time.Duration) *Table[T] {
	t := &Table[T]{
		Title:   title,
		Columns: columns,
		filters: make(FilterSet),
	}
	t.searcher = NewDebouncer(delay, func(term string) {
		t.filters.SetSearch(term)
		t.emitFilter()
	})
	return t
}

// State reports what the body shows: spinner while loading, the no-data
// message when the page is empty, rows otherwise. Errors are the caller's
// responsibility; the table has no error state.
func (t *Table[T]) State() State {
	if t.Loading {
		return StateLoading
	}
	if len(t.Data) == 0 {
		return StateEmpty
	}
	return StateRows
}

// Search feeds the free-text input. The callback fires once per debounce
// window with the latest term; a cleared input removes the search key.
func (t *Table[T]) Search(term string) {
	t.searcher.Trigger(term)
}

// SetFilter applies a column filter immediately. Empty values and the
// sentinel "all" deactivate the filter.
func (t *Table[T]) SetFilter(key, value string) {
	t.filters.Set(key, value)
	t.emitFilter()
}

// ClearFilters drops every active filter, search included.
func (t *Table[T]) ClearFilters() {
	t.searcher.Stop()
	t.filters.Clear()
	t.emitFilter()
}

// Filters returns a copy of the active filter set.
func (t *Table[T]) Filters() FilterSet {
	return t.filters.Clone()
}

// ChangePage signals the caller to fetch another page. Out-of-range pages
// are ignored, matching the disabled boundary buttons.
func (t *Table[T]) ChangePage(page int) {
	if page < 1 || (t.Pagination.LastPage > 0 && page > t.Pagination.LastPage) || page == t.Pagination.CurrentPage {
		return
	}
	if t.OnPageChange != nil {
		t.OnPageChange(page)
	}
}

// ToggleRow toggles the expansion state for a row key; at most one row is
// expanded at a time.
func (t *Table[T]) ToggleRow(key string) bool {
	return t.expand.Toggle(key)
}

// ExpandedRow returns the currently expanded row key, if any.
func (t *Table[T]) ExpandedRow() (string, bool) {
	return t.expand.Expanded()
}

// Export writes the currently loaded page as CSV.
func (t *Table[T]) Export(w io.Writer) error {
	return ExportCSV(w, t.Columns, t.Data)
}

// ExportFilename is the download name for Export output.
func (t *Table[T]) ExportFilename() string {
	return ExportFilename(t.Title)
}

func (t *Table[T]) emitFilter() {
	if t.OnFilter != nil {
		t.OnFilter(t.filters.Clone())
	}
}
