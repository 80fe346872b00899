package datatable

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type exportRow struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func exportColumns() []Column[exportRow] {
	return []Column[exportRow]{
		{Label: "name", Accessor: "name"},
		{Label: "value", Accessor: "value"},
	}
}

func TestExportCSVQuotingAndBOM(t *testing.T) {
	rows := []exportRow{
		{Name: "A,1", Value: 5},
		{Name: "B", Value: 10},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, exportColumns(), rows))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"), "missing UTF-8 BOM")

	body := strings.TrimPrefix(out, "\xEF\xBB\xBF")
	assert.Equal(t, "\"name\",\"value\"\n\"A,1\",5\n\"B\",10\n", body)
}

func TestExportCSVEscapesEmbeddedQuotes(t *testing.T) {
	rows := []exportRow{{Name: `say "hi"`, Value: 1}}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, exportColumns(), rows))

	assert.Contains(t, buf.String(), `"say ""hi""",1`)
}

func TestExportCSVKeepsNonLatinText(t *testing.T) {
	rows := []exportRow{{Name: "فصيلة الدم", Value: 3}}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, exportColumns(), rows))

	assert.Contains(t, buf.String(), `"فصيلة الدم",3`)
}

func TestExportCSVSkipsNoExportColumns(t *testing.T) {
	cols := []Column[exportRow]{
		{Label: "name", Accessor: "name"},
		{Label: "actions", Accessor: "value", NoExport: true},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, cols, []exportRow{{Name: "A", Value: 5}}))

	body := strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF")
	assert.Equal(t, "\"name\"\n\"A\"\n", body)
}

func TestExportCSVUsesRender(t *testing.T) {
	cols := []Column[exportRow]{
		{Label: "name", Render: func(r exportRow) string { return strings.ToUpper(r.Name) }},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, cols, []exportRow{{Name: "ali"}}))

	assert.Contains(t, buf.String(), `"ALI"`)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "patients.csv", ExportFilename("patients"))
	assert.Equal(t, "data.csv", ExportFilename(""))
}
