package datatable

// SearchKey is the filter key carrying the free-text search term.
const SearchKey = "search"

// FilterAll is the single-select sentinel meaning "no filter".
const FilterAll = "all"

// FilterSet holds the active filters. Key presence means "filter active":
// clearing an input or selecting the sentinel removes the key entirely
// rather than setting it to an empty value, so consumers must check
// presence, not truthiness.
type FilterSet map[string]string

// Set activates or removes a filter. An empty value or the sentinel "all"
// removes the key from the set.
func (f FilterSet) Set(key, value string) {
	if value == "" || value == FilterAll {
		delete(f, key)
		return
	}
	f[key] = value
}

// SetSearch applies the search term under SearchKey; an empty term removes
// the key.
func (f FilterSet) SetSearch(term string) {
	f.Set(SearchKey, term)
}

// Get returns the filter value and whether the filter is active.
func (f FilterSet) Get(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

// Clear removes every active filter.
func (f FilterSet) Clear() {
	for k := range f {
		delete(f, k)
	}
}

// Clone returns an independent copy, so callbacks cannot observe later
// mutations.
func (f FilterSet) Clone() FilterSet {
	out := make(FilterSet, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
