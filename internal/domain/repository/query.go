package repository

// ListQuery carries the list-screen query: page/limit, the free-text search
// term, and the active column filters. Filter key presence means the filter
// is active; absent keys are not applied.
type ListQuery struct {
	Page    int
	Limit   int
	Search  string
	Filters map[string]string
}

// Normalize clamps paging to sane values.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	return q
}

// Offset is the row offset for the normalized query.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// LastPage computes the last page number for a total row count.
func (q ListQuery) LastPage(total int64) int {
	if total == 0 {
		return 1
	}
	last := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	if last < 1 {
		last = 1
	}
	return last
}

// Filter returns the filter value and whether it is active.
func (q ListQuery) Filter(key string) (string, bool) {
	v, ok := q.Filters[key]
	return v, ok
}
