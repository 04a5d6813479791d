// Package packs composes a learner's curated review package: it classifies
// the word pool, derives per-category quotas from the pool's aggregate state,
// and fills an ordered, shuffled selection.
package packs

import (
	"time"

	"github.com/gongduet/voquab/internal/retention"
	"github.com/gongduet/voquab/internal/vocab"
)

// exposureCeiling is the review count at which a word leaves the exposure
// phase: after 10 reviews it is no longer "early history".
const exposureCeiling = 10

// Classify assigns a record to exactly one category. Precedence, first
// match wins: decayed health below critical → critical; reviewed, below
// full mastery, and past its time gate → mastery_ready; fewer than 10
// reviews → exposure; never reviewed → new; everything else → other.
func Classify(r *vocab.ProgressRecord, now time.Time) vocab.Category {
	snap := retention.Snapshot(r, now)
	switch {
	case snap.Current < retention.CriticalThreshold:
		return vocab.CategoryCritical
	case r.MasteryLevel < 100 && r.TotalReviews > 0 && retention.CanGainMastery(r, now):
		return vocab.CategoryMasteryReady
	case r.TotalReviews > 0 && r.TotalReviews < exposureCeiling:
		return vocab.CategoryExposure
	case r.TotalReviews == 0:
		return vocab.CategoryNew
	default:
		return vocab.CategoryOther
	}
}
