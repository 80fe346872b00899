package datatable

// DefaultWindow is how many page-number buttons the control shows at most.
const DefaultWindow = 5

// Pagination carries server-computed paging state. The table never fetches
// pages itself; OnPageChange is the caller's signal to re-fetch.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// Controls is the rendered state of the pagination bar.
type Controls struct {
	Pages       []int
	FirstActive bool
	PrevActive  bool
	NextActive  bool
	LastActive  bool
}

// ShowControls reports whether a pagination bar is rendered at all. A single
// page short-circuits to no controls.
func (p Pagination) ShowControls() bool {
	return p.LastPage > 1
}

// Window returns up to width page numbers centered near the current page,
// clamped to [1, last_page].
func (p Pagination) Window(width int) []int {
	if !p.ShowControls() || width < 1 {
		return nil
	}

	start := p.CurrentPage - width/2
	if start < 1 {
		start = 1
	}
	end := start + width - 1
	if end > p.LastPage {
		end = p.LastPage
		start = end - width + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, end-start+1)
	for page := start; page <= end; page++ {
		pages = append(pages, page)
	}
	return pages
}

// Controls computes the full pagination bar state with the default window.
// First/prev are inactive on the first page, next/last on the last.
func (p Pagination) Controls() Controls {
	if !p.ShowControls() {
		return Controls{}
	}
	return Controls{
		Pages:       p.Window(DefaultWindow),
		FirstActive: p.CurrentPage > 1,
		PrevActive:  p.CurrentPage > 1,
		NextActive:  p.CurrentPage < p.LastPage,
		LastActive:  p.CurrentPage < p.LastPage,
	}
}
