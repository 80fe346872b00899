package datatable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSetKeyPresence(t *testing.T) {
	f := make(FilterSet)

	f.Set("gender", "M")
	v, ok := f.Get("gender")
	assert.True(t, ok)
	assert.Equal(t, "M", v)

	// Clearing removes the key entirely, it does not set an empty value.
	f.Set("gender", "")
	_, ok = f.Get("gender")
	assert.False(t, ok)
	assert.NotContains(t, f, "gender")
}

func TestFilterSetAllSentinelRemovesKey(t *testing.T) {
	f := FilterSet{"blood_type": "O+"}

	f.Set("blood_type", FilterAll)
	assert.NotContains(t, f, "blood_type")
}

func TestFilterSetSearch(t *testing.T) {
	f := make(FilterSet)

	f.SetSearch("ahmad")
	assert.Equal(t, FilterSet{SearchKey: "ahmad"}, f)

	f.SetSearch("")
	assert.NotContains(t, f, SearchKey)
}

func TestFilterSetCloneIsIndependent(t *testing.T) {
	f := FilterSet{"status": "pending"}
	c := f.Clone()

	f.Set("status", "accepted")
	assert.Equal(t, "pending", c["status"])
}

func TestFilterSetClear(t *testing.T) {
	f := FilterSet{"status": "pending", SearchKey: "x"}
	f.Clear()
	assert.Empty(t, f)
}
