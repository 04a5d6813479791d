package vocab

import "fmt"

// Rating is the learner's self-assessment of one review.
type Rating string

const (
	RatingEasy   Rating = "easy"
	RatingMedium Rating = "medium"
	RatingHard   Rating = "hard"
	// RatingAgain is the "don't know" outcome: the word goes back into
	// the short loop and counts as an incorrect review.
	RatingAgain Rating = "again"
)

// Correct reports whether the rating counts as a correct review.
// An unknown rating is a caller bug and panics.
func (r Rating) Correct() bool {
	switch r {
	case RatingEasy, RatingMedium, RatingHard:
		return true
	case RatingAgain:
		return false
	}
	panic(fmt.Sprintf("vocab: invalid rating %q", string(r)))
}

// Valid reports whether r is one of the four defined ratings.
func (r Rating) Valid() bool {
	switch r {
	case RatingEasy, RatingMedium, RatingHard, RatingAgain:
		return true
	}
	return false
}

// Category classifies a word within a composed review package.
type Category string

const (
	// CategoryCritical marks words whose current health has dropped below
	// the critical threshold.
	CategoryCritical Category = "critical"
	// CategoryMasteryReady marks reviewed words that can still gain
	// mastery and have cleared the time gate.
	CategoryMasteryReady Category = "mastery_ready"
	// CategoryExposure marks words still early in their review history.
	CategoryExposure Category = "exposure"
	// CategoryNew marks words the learner has never reviewed.
	CategoryNew Category = "new"
	// CategoryOther covers everything else; not directly selectable,
	// used only as overflow filler.
	CategoryOther Category = "other"
)
