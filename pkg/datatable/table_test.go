package datatable

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nested struct {
	Profile struct {
		City string `json:"city"`
	} `json:"profile"`
	Tags map[string]interface{} `json:"tags"`
}

func TestResolveDotPaths(t *testing.T) {
	var row nested
	row.Profile.City = "Riyadh"
	row.Tags = map[string]interface{}{"ward": "B2"}

	assert.Equal(t, "Riyadh", Resolve(row, "profile.city"))
	assert.Equal(t, "B2", Resolve(row, "tags.ward"))
	assert.Nil(t, Resolve(row, "profile.street"))
	assert.Nil(t, Resolve(row, "missing.path"))
	assert.Nil(t, Resolve(row, ""))

	m := map[string]interface{}{"a": map[string]interface{}{"b": 7}}
	assert.Equal(t, 7, Resolve(m, "a.b"))
}

func TestTableState(t *testing.T) {
	tbl := New[exportRow]("patients", exportColumns())

	tbl.Loading = true
	assert.Equal(t, StateLoading, tbl.State())

	tbl.Loading = false
	assert.Equal(t, StateEmpty, tbl.State())

	tbl.Data = []exportRow{{Name: "A"}}
	assert.Equal(t, StateRows, tbl.State())
}

func TestTableSearchDebouncedOnce(t *testing.T) {
	var mu sync.Mutex
	var calls []FilterSet

	tbl := NewWithDebounce[exportRow]("patients", exportColumns(), 30*time.Millisecond)
	tbl.OnFilter = func(f FilterSet) {
		mu.Lock()
		calls = append(calls, f)
		mu.Unlock()
	}

	tbl.Search("ab")
	tbl.Search("abc")
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, calls, 1)
	assert.Equal(t, "abc", calls[0][SearchKey])
}

func TestTableClearedSearchRemovesKey(t *testing.T) {
	var mu sync.Mutex
	var last FilterSet

	tbl := NewWithDebounce[exportRow]("patients", exportColumns(), 10*time.Millisecond)
	tbl.OnFilter = func(f FilterSet) {
		mu.Lock()
		last = f
		mu.Unlock()
	}

	tbl.Search("abc")
	time.Sleep(50 * time.Millisecond)
	tbl.Search("")
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.NotNil(t, last)
	assert.NotContains(t, last, SearchKey)
}

func TestTableSetFilterFiresImmediately(t *testing.T) {
	var calls []FilterSet

	tbl := New[exportRow]("patients", exportColumns())
	tbl.OnFilter = func(f FilterSet) { calls = append(calls, f) }

	tbl.SetFilter("gender", "F")
	require.Len(t, calls, 1)
	assert.Equal(t, "F", calls[0]["gender"])

	tbl.SetFilter("gender", FilterAll)
	require.Len(t, calls, 2)
	assert.NotContains(t, calls[1], "gender")
}

func TestTableChangePageBounds(t *testing.T) {
	var pages []int

	tbl := New[exportRow]("patients", exportColumns())
	tbl.Pagination = Pagination{CurrentPage: 2, LastPage: 4}
	tbl.OnPageChange = func(p int) { pages = append(pages, p) }

	tbl.ChangePage(3)
	tbl.ChangePage(0)  // below range
	tbl.ChangePage(5)  // above range
	tbl.ChangePage(2)  // current page, no-op

	assert.Equal(t, []int{3}, pages)
}
