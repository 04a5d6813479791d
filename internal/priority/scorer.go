// Package priority ranks vocabulary words for review by combining retention,
// corpus frequency, structural position, and learner signals into one score.
package priority

import (
	"math"
	"time"

	"github.com/gongduet/voquab/internal/retention"
	"github.com/gongduet/voquab/internal/vocab"
)

// Additive component weights and caps.
const (
	healthWeight    = 0.5 // (100 - health) * weight, max 50
	frequencyWeight = 0.6
	frequencyCap    = 30.0

	earlyChapterBonus = 15.0 // chapters 1–3 are foundational
	midChapterBonus   = 10.0 // chapters 4–5
	lateChapterBonus  = 5.0

	masteryReadyBonus = 10.0 // mastery < 100 can still grow
	focusBonus        = 10.0
)

// Multiplicative boosts, applied in sequence to the additive sum.
const (
	criticalBoost = 1.5 // health below the critical threshold
	leechBoost    = 1.3 // failed in recent sessions
	newWordBoost  = 1.1 // never reviewed: favor vocabulary expansion
)

// Options configures a scoring pass. The zero value scores with no focus.
type Options struct {
	ChapterFocus   bool
	FocusChapterID string
}

// Breakdown itemizes a score for display and debugging.
type Breakdown struct {
	HealthUrgency float64 `json:"health_urgency"`
	Frequency     float64 `json:"frequency"`
	Chapter       float64 `json:"chapter"`
	MasteryReady  float64 `json:"mastery_ready"`
	Focus         float64 `json:"focus"`
	CriticalBoost bool    `json:"critical_boost"`
	LeechBoost    bool    `json:"leech_boost"`
	NewWordBoost  bool    `json:"new_word_boost"`
}

// Score is the scored view of one word at one instant.
type Score struct {
	Total         int                    `json:"total_score"`
	Breakdown     Breakdown              `json:"breakdown"`
	CurrentHealth float64                `json:"current_health"`
	Status        retention.HealthStatus `json:"status"`
}

// Compute scores one record. Deterministic for a fixed now; callers must use
// a single now across one selection pass so relative ordering is stable.
func Compute(r *vocab.ProgressRecord, now time.Time, opts Options) Score {
	snap := retention.Snapshot(r, now)

	bd := Breakdown{
		HealthUrgency: (100 - snap.Current) * healthWeight,
		Frequency:     math.Min(frequencyCap, float64(r.Frequency)*frequencyWeight),
		Chapter:       chapterBonus(r.ChapterNumber),
	}
	if r.MasteryLevel < 100 {
		bd.MasteryReady = masteryReadyBonus
	}
	if opts.ChapterFocus && opts.FocusChapterID != "" && r.ChapterID == opts.FocusChapterID {
		bd.Focus = focusBonus
	}

	total := bd.HealthUrgency + bd.Frequency + bd.Chapter + bd.MasteryReady + bd.Focus

	if snap.Current < retention.CriticalThreshold {
		total *= criticalBoost
		bd.CriticalBoost = true
	}
	if r.FailedRecently {
		total *= leechBoost
		bd.LeechBoost = true
	}
	if r.Unseen() {
		total *= newWordBoost
		bd.NewWordBoost = true
	}

	return Score{
		Total:         int(math.Round(total)),
		Breakdown:     bd,
		CurrentHealth: snap.Current,
		Status:        snap.Status,
	}
}

func chapterBonus(chapter int) float64 {
	switch {
	case chapter <= 0: // unknown position: no foundational weight
		return lateChapterBonus
	case chapter <= 3:
		return earlyChapterBonus
	case chapter <= 5:
		return midChapterBonus
	default:
		return lateChapterBonus
	}
}
