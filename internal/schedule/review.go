package schedule

import (
	"math/rand"
	"time"

	"github.com/gongduet/voquab/internal/retention"
	"github.com/gongduet/voquab/internal/vocab"
)

// Mastery deltas per rating. Positive deltas apply only when the word's
// time gate has cleared; the penalty for again always applies.
const (
	easyMasteryGain   = 10
	mediumMasteryGain = 5
	hardMasteryGain   = 2
	againMasteryLoss  = 5
)

// againHealth is the health a word drops to on a miss: it re-enters the
// decay cycle just above critical.
const againHealth = 30

// leechRecovery is how many consecutive correct reviews clear the
// failed-recently flag.
const leechRecovery = 3

// Outcome describes what one rating event did to a record.
type Outcome struct {
	Rating        vocab.Rating `json:"rating"`
	MasteryBefore int          `json:"mastery_before"`
	MasteryAfter  int          `json:"mastery_after"`
	GatePassed    bool         `json:"gate_passed"`
	IntervalDays  int          `json:"interval_days"`
	NextDueAt     time.Time    `json:"next_due_at"`
}

// Apply mutates the record for one rating event: mastery delta, health
// boost, counters, timestamps, and next due date. The interval for easy is
// keyed on the post-increment mastery; medium and again use the mastery the
// word had walking in.
func Apply(r *vocab.ProgressRecord, rating vocab.Rating, now time.Time, rng *rand.Rand) Outcome {
	if !rating.Valid() {
		panic("schedule: invalid rating " + string(rating))
	}

	before := vocab.ClampMastery(r.MasteryLevel)
	gate := retention.CanGainMastery(r, now)

	after := before
	switch rating {
	case vocab.RatingEasy:
		if gate {
			after = vocab.ClampMastery(before + easyMasteryGain)
		}
	case vocab.RatingMedium:
		if gate {
			after = vocab.ClampMastery(before + mediumMasteryGain)
		}
	case vocab.RatingHard:
		if gate {
			after = vocab.ClampMastery(before + hardMasteryGain)
		}
	case vocab.RatingAgain:
		after = vocab.ClampMastery(before - againMasteryLoss)
	}

	// Interval key: post-increment mastery for easy, pre-update otherwise.
	intervalKey := before
	if rating == vocab.RatingEasy {
		intervalKey = after
	}
	days := Interval(rating, intervalKey, rng)
	due := now.AddDate(0, 0, days)

	r.MasteryLevel = after
	r.TotalReviews++
	r.LastReviewedAt = &now
	r.NextDueAt = &due

	if rating.Correct() {
		r.CorrectReviews++
		r.ConsecutiveCorrect++
		r.LastCorrectReviewAt = &now
		r.Health = 100
		if r.FailedRecently && r.ConsecutiveCorrect >= leechRecovery {
			r.FailedRecently = false
		}
	} else {
		r.ConsecutiveCorrect = 0
		r.FailedRecently = true
		r.Health = againHealth
	}

	return Outcome{
		Rating:        rating,
		MasteryBefore: before,
		MasteryAfter:  after,
		GatePassed:    gate,
		IntervalDays:  days,
		NextDueAt:     due,
	}
}
