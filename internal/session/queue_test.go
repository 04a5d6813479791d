package session

import (
	"testing"

	"github.com/gongduet/voquab/internal/vocab"
)

func queueOf(n int) *Queue {
	pool := make([]*vocab.ProgressRecord, n)
	for i := range pool {
		r := vocab.NewRecord(wordID(i))
		r.Health = float64(100 - i*10)
		r.LastReviewedAt = &testNow
		pool[i] = r
	}
	return BuildQueue(pool, Selection{Size: n}, testNow, testRng())
}

func TestAdvance_WalksToCompletion(t *testing.T) {
	q := queueOf(3)
	for i := 0; i < 3; i++ {
		if q.Done() {
			t.Fatalf("Done at index %d, want completion only past the end", i)
		}
		if q.Index() != i {
			t.Fatalf("Index = %d, want %d", q.Index(), i)
		}
		q.Advance()
	}
	if !q.Done() {
		t.Error("queue must be complete after advancing past every word")
	}
}

func TestAdvance_ResetsFlip(t *testing.T) {
	q := queueOf(2)
	q.Flip()
	if !q.Current().Flipped {
		t.Fatal("Flip must mark the current card")
	}
	q.Advance()
	if q.Current().Flipped {
		t.Error("Advance must reset the flip state of the next card")
	}
}

func TestRequeueImmediate_MovesToEnd(t *testing.T) {
	q := queueOf(4)
	cur := q.Current()
	length := q.Len()
	idx := q.Index()

	q.Requeue(RequeueImmediate)

	if q.Len() != length {
		t.Errorf("Len = %d, want unchanged %d", q.Len(), length)
	}
	if q.Index() != idx {
		t.Errorf("Index = %d, want unchanged %d", q.Index(), idx)
	}
	entries := q.Entries()
	if entries[len(entries)-1] != cur {
		t.Error("requeued word must be at the last position")
	}
	if q.Current() == cur {
		t.Error("the next word must slide into the current slot")
	}
	if countOf(q, cur.Record.WordID) != 1 {
		t.Error("requeue must move the word, not duplicate it")
	}
}

func TestRequeueImmediate_SingleItemLoops(t *testing.T) {
	q := queueOf(1)
	cur := q.Current()
	q.Requeue(RequeueImmediate)
	if q.Current() != cur {
		t.Error("a single-word queue must present the same word again")
	}
	if q.Len() != 1 {
		t.Errorf("Len = %d, want 1", q.Len())
	}
}

func TestRequeueDelayed_AdvancesAndReinserts(t *testing.T) {
	q := queueOf(12)
	cur := q.Current()
	length := q.Len()

	q.Requeue(RequeueDelayed)

	if q.Len() != length {
		t.Errorf("Len = %d, want unchanged %d", q.Len(), length)
	}
	if q.Index() != 1 {
		t.Errorf("Index = %d, want 1 (delayed requeue advances)", q.Index())
	}
	pos := -1
	for i, e := range q.Entries() {
		if e == cur {
			pos = i
		}
	}
	// Reinserted 3–7 positions past the old index.
	if pos < 3 || pos > 7 {
		t.Errorf("requeued word at position %d, want within [3,7]", pos)
	}
	if countOf(q, cur.Record.WordID) != 1 {
		t.Error("requeue must move the word, not duplicate it")
	}
}

func TestRequeueDelayed_ClampsNearEnd(t *testing.T) {
	q := queueOf(2)
	cur := q.Current()
	q.Requeue(RequeueDelayed)
	entries := q.Entries()
	if entries[len(entries)-1] != cur {
		t.Error("near the end the reinsertion position clamps to the queue tail")
	}
	if q.Len() != 2 {
		t.Errorf("Len = %d, want 2", q.Len())
	}
}

func TestRequeue_InvalidPolicyPanics(t *testing.T) {
	q := queueOf(2)
	defer func() {
		if recover() == nil {
			t.Error("an unknown requeue policy must panic")
		}
	}()
	q.Requeue("sometime")
}

func TestRequeue_NoopWhenDone(t *testing.T) {
	q := queueOf(1)
	q.Advance()
	q.Requeue(RequeueImmediate) // must not panic or grow the queue
	if q.Len() != 1 {
		t.Errorf("Len = %d, want 1", q.Len())
	}
}

func countOf(q *Queue, wordID string) int {
	n := 0
	for _, e := range q.Entries() {
		if e.Record.WordID == wordID {
			n++
		}
	}
	return n
}
