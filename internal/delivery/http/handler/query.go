package handler

import (
	"net/http"
	"strconv"

	"clinic-admin/internal/domain/repository"
	"clinic-admin/pkg/datatable"
	"clinic-admin/pkg/response"
)

// parseListQuery builds the repository query from a list request. Only the
// named filter keys are honored; "search" is always read. A filter sent as
// "all" or empty is treated as absent, matching the table's sentinel.
func parseListQuery(r *http.Request, filterKeys ...string) repository.ListQuery {
	values := r.URL.Query()

	page, _ := strconv.Atoi(values.Get("page"))
	limit, _ := strconv.Atoi(values.Get("limit"))

	q := repository.ListQuery{
		Page:    page,
		Limit:   limit,
		Search:  values.Get(datatable.SearchKey),
		Filters: make(map[string]string),
	}

	for _, key := range filterKeys {
		v := values.Get(key)
		if v == "" || v == datatable.FilterAll {
			continue
		}
		q.Filters[key] = v
	}

	return q.Normalize()
}

// pageEnvelope wraps a list result in the paging envelope the admin tables
// consume.
func pageEnvelope(q repository.ListQuery, data interface{}, total int64) *response.Page {
	return &response.Page{
		Data:        data,
		CurrentPage: q.Page,
		PerPage:     q.Limit,
		Total:       total,
		LastPage:    q.LastPage(total),
	}
}

// writeCSV streams a CSV export with the download headers set.
func writeCSV[T any](w http.ResponseWriter, title string, columns []datatable.Column[T], rows []T) {
	filename := datatable.ExportFilename(title)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := datatable.ExportCSV(w, columns, rows); err != nil {
		// Headers are already sent; nothing left to do but log at the caller.
		return
	}
}
