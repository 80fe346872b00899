package datatable

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type termRecorder struct {
	mu    sync.Mutex
	terms []string
}

func (r *termRecorder) record(term string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terms = append(r.terms, term)
}

func (r *termRecorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.terms...)
}

func TestDebouncerCollapsesRapidTerms(t *testing.T) {
	rec := &termRecorder{}
	d := NewDebouncer(30*time.Millisecond, rec.record)

	// "ab" then "abc" inside the window must yield one call with "abc".
	d.Trigger("ab")
	time.Sleep(5 * time.Millisecond)
	d.Trigger("abc")

	time.Sleep(100 * time.Millisecond)
	require.Equal(t, []string{"abc"}, rec.calls())
}

func TestDebouncerFiresPerQuietPeriod(t *testing.T) {
	rec := &termRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)

	d.Trigger("first")
	time.Sleep(60 * time.Millisecond)
	d.Trigger("second")
	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, rec.calls())
}

func TestDebouncerStopDiscardsPending(t *testing.T) {
	rec := &termRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.record)

	d.Trigger("never")
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, rec.calls())
}

func TestDebouncerFlush(t *testing.T) {
	rec := &termRecorder{}
	d := NewDebouncer(time.Hour, rec.record)

	d.Trigger("now")
	d.Flush()
	assert.Equal(t, []string{"now"}, rec.calls())

	// Flush with nothing pending is a no-op.
	d.Flush()
	assert.Equal(t, []string{"now"}, rec.calls())
}
