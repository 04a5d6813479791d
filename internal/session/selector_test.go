package session

import (
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/gongduet/voquab/internal/priority"
	"github.com/gongduet/voquab/internal/vocab"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(99))
}

// poolWithHealths builds reviewed records whose snapshot health equals the
// given values, so priority ordering tracks health urgency.
func poolWithHealths(healths ...float64) []*vocab.ProgressRecord {
	pool := make([]*vocab.ProgressRecord, len(healths))
	for i, h := range healths {
		r := vocab.NewRecord(wordID(i))
		r.Health = h
		r.MasteryLevel = 50
		r.TotalReviews = 3
		r.CorrectReviews = 3
		r.LastReviewedAt = &testNow
		pool[i] = r
	}
	return pool
}

func wordID(i int) string {
	return string(rune('a'+i)) + "-word"
}

func TestBuildQueue_NeverExceedsPoolOrSize(t *testing.T) {
	pool := poolWithHealths(90, 80, 70)

	q := BuildQueue(pool, Selection{Size: 10}, testNow, testRng())
	if q.Len() != 3 {
		t.Errorf("Len = %d, want 3 (pool smaller than target)", q.Len())
	}

	q = BuildQueue(pool, Selection{Size: 2}, testNow, testRng())
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}
}

func TestBuildQueue_SelectsTopK(t *testing.T) {
	pool := poolWithHealths(95, 30, 85, 10, 60, 45, 75)
	k := 3

	q := BuildQueue(pool, Selection{Size: k, Shuffle: true}, testNow, testRng())

	// Brute-force top-K by score over the same pool and now.
	scores := make([]int, len(pool))
	for i, r := range pool {
		scores[i] = priority.Compute(r, testNow, priority.Options{}).Total
	}
	sorted := append([]int(nil), scores...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	cutoff := sorted[k-1]

	for _, e := range q.Entries() {
		if e.Score.Total < cutoff {
			t.Errorf("selected %q with score %d below top-%d cutoff %d",
				e.Record.WordID, e.Score.Total, k, cutoff)
		}
	}
}

func TestBuildQueue_ShuffleKeepsSameSet(t *testing.T) {
	pool := poolWithHealths(10, 20, 30, 40, 50, 60, 70, 80)

	plain := BuildQueue(pool, Selection{Size: 5}, testNow, testRng())
	shuffled := BuildQueue(pool, Selection{Size: 5, Shuffle: true}, testNow, testRng())

	want := map[string]bool{}
	for _, e := range plain.Entries() {
		want[e.Record.WordID] = true
	}
	for _, e := range shuffled.Entries() {
		if !want[e.Record.WordID] {
			t.Errorf("shuffle changed the selected set: unexpected %q", e.Record.WordID)
		}
	}
	if shuffled.Len() != plain.Len() {
		t.Errorf("shuffle changed the selection size: %d vs %d", shuffled.Len(), plain.Len())
	}
}

func TestBuildQueue_UnshuffledIsPriorityOrdered(t *testing.T) {
	pool := poolWithHealths(50, 90, 10, 70)
	q := BuildQueue(pool, Selection{Size: 4}, testNow, testRng())
	entries := q.Entries()
	for i := 0; i < len(entries)-1; i++ {
		if entries[i].Score.Total < entries[i+1].Score.Total {
			t.Errorf("entries not in descending score order at %d: %d < %d",
				i, entries[i].Score.Total, entries[i+1].Score.Total)
		}
	}
}

func TestBuildQueue_EmptyPool(t *testing.T) {
	q := BuildQueue(nil, Selection{Size: 10}, testNow, testRng())
	if q.Len() != 0 {
		t.Errorf("Len = %d, want 0", q.Len())
	}
	if !q.Done() {
		t.Error("an empty queue is immediately complete")
	}
	if q.Current() != nil {
		t.Error("Current on an empty queue must be nil")
	}
}

func TestBuildQueue_Stats(t *testing.T) {
	pool := poolWithHealths(10, 15, 30, 90)
	pool = append(pool, vocab.NewRecord("unseen-word"))

	q := BuildQueue(pool, Selection{Size: 5}, testNow, testRng())
	st := q.Stats()
	if st.Total != 5 {
		t.Errorf("Total = %d, want 5", st.Total)
	}
	if st.CriticalCount() != 2 {
		t.Errorf("CriticalCount = %d, want 2", st.CriticalCount())
	}
	if st.LowCount() != 1 {
		t.Errorf("LowCount = %d, want 1", st.LowCount())
	}
	if st.NewCount != 1 {
		t.Errorf("NewCount = %d, want 1", st.NewCount)
	}
	if st.AveragePriority <= 0 {
		t.Errorf("AveragePriority = %f, want > 0", st.AveragePriority)
	}
}
