// Package session selects and orders a bounded review session from a scored
// word pool, and drives the in-session queue.
package session

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/gongduet/voquab/internal/priority"
	"github.com/gongduet/voquab/internal/retention"
	"github.com/gongduet/voquab/internal/vocab"
)

// Entry is one word in a session queue: the record plus its score at
// selection time and transient card state.
type Entry struct {
	Record  *vocab.ProgressRecord
	Score   priority.Score
	Flipped bool
}

// Stats summarizes a selected session.
type Stats struct {
	Total           int                            `json:"total"`
	Bands           map[retention.HealthStatus]int `json:"bands"`
	NewCount        int                            `json:"new_count"`
	AveragePriority float64                        `json:"average_priority"`
}

// CriticalCount returns the number of selected words in the critical band.
func (s Stats) CriticalCount() int { return s.Bands[retention.HealthCritical] }

// LowCount returns the number of selected words in the low band.
func (s Stats) LowCount() int { return s.Bands[retention.HealthLow] }

// Selection configures a BuildQueue call.
type Selection struct {
	Size    int
	Shuffle bool
	Scoring priority.Options
}

// BuildQueue scores the pool with one consistent now, keeps the top Size
// words by priority (stable on pool order for ties), and, when Shuffle is
// set, randomizes the presentation order of the selected subset only. The
// un-selected remainder is discarded. Selection and presentation order are
// deliberately decoupled: the learner always gets the highest-priority
// words but cannot predict that critical ones come first.
func BuildQueue(pool []*vocab.ProgressRecord, sel Selection, now time.Time, rng *rand.Rand) *Queue {
	entries := make([]*Entry, 0, len(pool))
	for _, r := range pool {
		entries = append(entries, &Entry{
			Record: r,
			Score:  priority.Compute(r, now, sel.Scoring),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score.Total > entries[j].Score.Total
	})

	if sel.Size > 0 && len(entries) > sel.Size {
		entries = entries[:sel.Size]
	}

	if sel.Shuffle {
		rng.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
	}

	return &Queue{
		ID:      uuid.New().String(),
		entries: entries,
		rng:     rng,
		stats:   computeStats(entries),
	}
}

func computeStats(entries []*Entry) Stats {
	st := Stats{Total: len(entries), Bands: map[retention.HealthStatus]int{}}
	if len(entries) == 0 {
		return st
	}
	sum := 0
	for _, e := range entries {
		sum += e.Score.Total
		st.Bands[e.Score.Status]++
		if e.Record.Unseen() {
			st.NewCount++
		}
	}
	st.AveragePriority = float64(sum) / float64(len(entries))
	return st
}
