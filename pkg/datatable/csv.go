package datatable

import (
	"fmt"
	"io"
	"strings"
)

// utf8BOM makes spreadsheet tools decode the file as UTF-8, so the Arabic
// reference-data labels survive the round trip.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportCSV writes rows as CSV: BOM, one header row from column labels, then
// one line per row. String cells are always double-quoted (embedded quotes
// doubled); other values are written via plain string conversion. Columns
// marked NoExport are skipped.
//
// Export operates on the rows it is given, in practice the currently loaded
// page rather than the full server-side result set.
func ExportCSV[T any](w io.Writer, columns []Column[T], rows []T) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("datatable: write bom: %w", err)
	}

	var exportable []Column[T]
	for _, c := range columns {
		if !c.NoExport {
			exportable = append(exportable, c)
		}
	}

	header := make([]string, len(exportable))
	for i, c := range exportable {
		header[i] = quote(c.Label)
	}
	if _, err := io.WriteString(w, strings.Join(header, ",")+"\n"); err != nil {
		return fmt.Errorf("datatable: write header: %w", err)
	}

	for _, row := range rows {
		cells := make([]string, len(exportable))
		for i, c := range exportable {
			cells[i] = formatCell(c.Value(row))
		}
		if _, err := io.WriteString(w, strings.Join(cells, ",")+"\n"); err != nil {
			return fmt.Errorf("datatable: write row: %w", err)
		}
	}

	return nil
}

// ExportFilename derives the download name from the table title.
func ExportFilename(title string) string {
	if title == "" {
		title = "data"
	}
	return title + ".csv"
}

func formatCell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return quote(val)
	default:
		return fmt.Sprint(val)
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
