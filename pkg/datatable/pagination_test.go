package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSinglePageRendersNoControls(t *testing.T) {
	p := Pagination{CurrentPage: 1, PerPage: 10, Total: 4, LastPage: 1}

	assert.False(t, p.ShowControls())
	assert.Empty(t, p.Controls().Pages)
	assert.Nil(t, p.Window(DefaultWindow))
}

func TestWindowCentersOnCurrentPage(t *testing.T) {
	tests := []struct {
		name    string
		current int
		last    int
		want    []int
	}{
		{"middle of a long run", 10, 20, []int{8, 9, 10, 11, 12}},
		{"clamped at the start", 1, 20, []int{1, 2, 3, 4, 5}},
		{"clamped at the end", 20, 20, []int{16, 17, 18, 19, 20}},
		{"fewer pages than the window", 2, 3, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pagination{CurrentPage: tt.current, LastPage: tt.last}
			assert.Equal(t, tt.want, p.Window(DefaultWindow))
		})
	}
}

func TestControlsBoundaries(t *testing.T) {
	first := Pagination{CurrentPage: 1, LastPage: 5}.Controls()
	assert.False(t, first.FirstActive)
	assert.False(t, first.PrevActive)
	assert.True(t, first.NextActive)
	assert.True(t, first.LastActive)

	last := Pagination{CurrentPage: 5, LastPage: 5}.Controls()
	assert.True(t, last.FirstActive)
	assert.True(t, last.PrevActive)
	assert.False(t, last.NextActive)
	assert.False(t, last.LastActive)

	middle := Pagination{CurrentPage: 3, LastPage: 5}.Controls()
	assert.True(t, middle.FirstActive)
	assert.True(t, middle.LastActive)
}
