package packs

import (
	"math/rand"
	"sort"
	"time"

	"github.com/gongduet/voquab/internal/priority"
	"github.com/gongduet/voquab/internal/vocab"
)

// Item is one selected word: the record tagged with its category and its
// 1-based position in the shuffled package sequence.
type Item struct {
	Record   *vocab.ProgressRecord
	Category vocab.Category
	Order    int
	Score    priority.Score
}

// Package is an ordered, curated review selection.
type Package struct {
	Items    []Item   `json:"items"`
	Target   int      `json:"target"`
	Scenario Scenario `json:"scenario"`
	Quotas   Quotas   `json:"quotas"`
}

// Size returns the number of selected words. A package may legitimately be
// smaller than its target when the learner's pool is too small.
func (p *Package) Size() int { return len(p.Items) }

// Input configures a Compose call. CorpusSize is the total word count of
// the catalog; zero means unknown, in which case only the pool's own new
// words count as available.
type Input struct {
	Target     int
	CorpusSize int
	Scoring    priority.Options
}

type candidate struct {
	record   *vocab.ProgressRecord
	category vocab.Category
	score    priority.Score
}

// Compose builds a package from the learner's full pool: classify, derive
// quotas, fill each category by priority, backfill from new then other, and
// shuffle. An empty pool yields an empty package — "not enough data yet",
// not an error.
func Compose(pool []*vocab.ProgressRecord, in Input, now time.Time, rng *rand.Rand) *Package {
	if in.Target < 0 {
		in.Target = 0
	}
	if len(pool) == 0 {
		return &Package{Target: in.Target}
	}

	byCategory := map[vocab.Category][]candidate{}
	for _, r := range pool {
		c := candidate{
			record:   r,
			category: Classify(r, now),
			score:    priority.Compute(r, now, in.Scoring),
		}
		byCategory[c.category] = append(byCategory[c.category], c)
	}
	for _, cands := range byCategory {
		sortByScore(cands)
	}

	st := PoolState{
		CriticalCount:     len(byCategory[vocab.CategoryCritical]),
		MasteryReadyCount: len(byCategory[vocab.CategoryMasteryReady]),
		ExposureCount:     len(byCategory[vocab.CategoryExposure]),
		NewAvailable:      newAvailable(byCategory, in.CorpusSize),
	}
	quotas, scenario := DeriveQuotas(st, in.Target)
	nCrit, nMast, nExp, nNew := quotas.Counts(in.Target)

	// Rounding each share independently can overshoot the target by a
	// word or two, so every fill is capped by the room left.
	var selected []Item
	take := func(cat vocab.Category, n int) {
		if room := in.Target - len(selected); n > room {
			n = room
		}
		cands := byCategory[cat]
		for i := 0; i < n && i < len(cands); i++ {
			selected = append(selected, Item{
				Record:   cands[i].record,
				Category: cat,
				Score:    cands[i].score,
			})
		}
		if n < len(cands) {
			byCategory[cat] = cands[n:]
		} else {
			byCategory[cat] = nil
		}
	}
	take(vocab.CategoryCritical, nCrit)
	take(vocab.CategoryMasteryReady, nMast)
	take(vocab.CategoryExposure, nExp)
	take(vocab.CategoryNew, nNew)

	// Backfill up to the target: unselected new words first (vocabulary
	// growth is the preferred filler), then other words folded into the
	// exposure bucket.
	if room := in.Target - len(selected); room > 0 {
		take(vocab.CategoryNew, room)
	}
	if room := in.Target - len(selected); room > 0 {
		cands := byCategory[vocab.CategoryOther]
		for i := 0; i < room && i < len(cands); i++ {
			selected = append(selected, Item{
				Record:   cands[i].record,
				Category: vocab.CategoryExposure,
				Score:    cands[i].score,
			})
		}
	}

	// Shuffle the whole selection so categories do not cluster, then
	// number the final sequence.
	rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})
	for i := range selected {
		selected[i].Order = i + 1
	}

	return &Package{
		Items:    selected,
		Target:   in.Target,
		Scenario: scenario,
		Quotas:   quotas,
	}
}

// newAvailable estimates how much new vocabulary the learner could draw on:
// unseen words already in the pool plus the catalog remainder the pool has
// no records for yet.
func newAvailable(byCategory map[vocab.Category][]candidate, corpusSize int) int {
	inPool := len(byCategory[vocab.CategoryNew])
	if corpusSize <= 0 {
		return inPool
	}
	tracked := 0
	for _, cands := range byCategory {
		tracked += len(cands)
	}
	remainder := corpusSize - tracked
	if remainder < 0 {
		remainder = 0
	}
	return inPool + remainder
}

func sortByScore(cands []candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].score.Total > cands[j].score.Total
	})
}
