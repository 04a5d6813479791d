// Package schedule maps rating outcomes to next-review intervals and applies
// rating events to progress records.
package schedule

import (
	"math/rand"

	"github.com/gongduet/voquab/internal/vocab"
)

// EasyIntervalDays holds the deterministic next-review interval for an easy
// rating, keyed by the bucket of the post-increment mastery level.
var EasyIntervalDays = [11]int{1, 2, 3, 5, 7, 14, 21, 30, 60, 180, 180}

// IntervalRange is an inclusive [Min, Max] day range.
type IntervalRange struct {
	Min int
	Max int
}

// SpreadIntervalDays holds the randomized interval range shared by medium and
// again ratings, keyed by the bucket of the current mastery level. The draw
// is uniform within the range, so repeated reviews of sibling words spread
// out instead of landing on the same day.
var SpreadIntervalDays = [11]IntervalRange{
	{1, 1}, {1, 1}, {1, 2}, {1, 2}, {2, 3},
	{2, 4}, {3, 5}, {4, 6}, {5, 7}, {7, 10}, {7, 10},
}

// HardIntervalDays is the fixed short-loop penalty for a hard rating,
// regardless of mastery.
const HardIntervalDays = 1

// EasyInterval returns the deterministic interval for an easy rating given
// the word's post-increment mastery level.
func EasyInterval(masteryAfter int) int {
	return EasyIntervalDays[vocab.Bucket(masteryAfter)]
}

// SpreadInterval draws a uniform random interval for a medium or again
// rating given the word's current mastery level.
func SpreadInterval(mastery int, rng *rand.Rand) int {
	r := SpreadIntervalDays[vocab.Bucket(mastery)]
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// HardInterval returns the fixed hard-rating interval.
func HardInterval() int {
	return HardIntervalDays
}

// Interval dispatches on the rating. For easy the caller passes the
// post-increment mastery; for medium and again, the current mastery.
// An unknown rating is a caller bug and panics.
func Interval(rating vocab.Rating, mastery int, rng *rand.Rand) int {
	switch rating {
	case vocab.RatingEasy:
		return EasyInterval(mastery)
	case vocab.RatingMedium, vocab.RatingAgain:
		return SpreadInterval(mastery, rng)
	case vocab.RatingHard:
		return HardInterval()
	}
	panic("schedule: invalid rating " + string(rating))
}
