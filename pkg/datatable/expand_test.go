package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandStateSingleRow(t *testing.T) {
	var e ExpandState

	_, ok := e.Expanded()
	assert.False(t, ok)

	assert.True(t, e.Toggle("row-1"))
	key, ok := e.Expanded()
	assert.True(t, ok)
	assert.Equal(t, "row-1", key)

	// Expanding a second row collapses the first.
	assert.True(t, e.Toggle("row-2"))
	key, _ = e.Expanded()
	assert.Equal(t, "row-2", key)

	// Toggling the expanded row collapses it.
	assert.False(t, e.Toggle("row-2"))
	_, ok = e.Expanded()
	assert.False(t, ok)
}

func TestExpandConfigRowExpandable(t *testing.T) {
	render := func(exportRow) string { return "detail" }

	tests := []struct {
		name string
		cfg  ExpandConfig[exportRow]
		want bool
	}{
		{"disabled", ExpandConfig[exportRow]{Render: render}, false},
		{"predicate true", ExpandConfig[exportRow]{Enabled: true, RowHasExpand: func(exportRow) bool { return true }}, true},
		{"predicate false with render", ExpandConfig[exportRow]{Enabled: true, RowHasExpand: func(exportRow) bool { return false }, Render: render}, false},
		{"no predicate with render", ExpandConfig[exportRow]{Enabled: true, Render: render}, true},
		{"no predicate no render", ExpandConfig[exportRow]{Enabled: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.RowExpandable(exportRow{}))
		})
	}
}
