package session

import (
	"fmt"
	"math/rand"
)

// RequeuePolicy selects how a "don't know" word re-enters the queue.
type RequeuePolicy string

const (
	// RequeueImmediate moves the word to the back of the queue without
	// advancing: the next word slides into the current slot, so the
	// visible progress counter holds still.
	RequeueImmediate RequeuePolicy = "immediate"
	// RequeueDelayed re-inserts the word 3–7 positions ahead and advances
	// normally, so it resurfaces later in the same session.
	RequeueDelayed RequeuePolicy = "delayed"
)

// Valid reports whether p is a defined requeue policy.
func (p RequeuePolicy) Valid() bool {
	return p == RequeueImmediate || p == RequeueDelayed
}

// Delayed-requeue reinsertion offset range, inclusive.
const (
	delayedOffsetMin = 3
	delayedOffsetMax = 7
)

// Queue is the runtime state of one review session.
type Queue struct {
	ID      string
	entries []*Entry
	index   int
	rng     *rand.Rand
	stats   Stats
}

// Stats returns the selection summary captured when the queue was built.
func (q *Queue) Stats() Stats { return q.stats }

// Len returns the number of words in the queue.
func (q *Queue) Len() int { return len(q.entries) }

// Index returns the current position (the visible progress counter).
func (q *Queue) Index() int { return q.index }

// Entries returns the queue contents in presentation order.
func (q *Queue) Entries() []*Entry { return q.entries }

// Current returns the word at the current position, or nil when the
// session is complete.
func (q *Queue) Current() *Entry {
	if q.Done() {
		return nil
	}
	return q.entries[q.index]
}

// Done reports whether the session is complete.
func (q *Queue) Done() bool {
	return q.index >= len(q.entries)
}

// Flip reveals the current card. No-op when the session is complete.
func (q *Queue) Flip() {
	if e := q.Current(); e != nil {
		e.Flipped = true
	}
}

// Advance moves to the next word and resets the flip state.
func (q *Queue) Advance() {
	if q.Done() {
		return
	}
	q.index++
	if e := q.Current(); e != nil {
		e.Flipped = false
	}
}

// Requeue recycles the current word under the given policy after a
// "don't know" rating. The word is moved, never duplicated: queue length
// is unchanged. No-op when the session is complete. An unknown policy is
// a caller bug and panics.
func (q *Queue) Requeue(policy RequeuePolicy) {
	if q.Done() {
		return
	}
	e := q.entries[q.index]
	e.Flipped = false

	switch policy {
	case RequeueImmediate:
		// Remove from the current slot and append; the index now points
		// at what was the next word, so no advance.
		q.entries = append(q.entries[:q.index], q.entries[q.index+1:]...)
		q.entries = append(q.entries, e)

	case RequeueDelayed:
		rest := append(q.entries[:q.index], q.entries[q.index+1:]...)
		offset := delayedOffsetMin + q.rng.Intn(delayedOffsetMax-delayedOffsetMin+1)
		at := q.index + offset
		if at > len(rest) {
			at = len(rest)
		}
		q.entries = append(rest[:at], append([]*Entry{e}, rest[at:]...)...)
		q.index++

	default:
		panic(fmt.Sprintf("session: invalid requeue policy %q", string(policy)))
	}
}
