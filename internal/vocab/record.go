package vocab

import (
	"math"
	"time"
)

// ProgressRecord tracks one learner's history with a single vocabulary word.
// One record exists per learner×word pair; it is created on first encounter
// and mutated after every rating event, never deleted by the engine.
type ProgressRecord struct {
	WordID string `json:"word_id"`

	// MasteryLevel is the long-term knowledge score, 0–100.
	MasteryLevel int `json:"mastery_level"`

	// Health is the short-term retention estimate as last persisted,
	// before any decay is applied. 0–100.
	Health float64 `json:"health"`

	LastReviewedAt      *time.Time `json:"last_reviewed_at,omitempty"`
	LastCorrectReviewAt *time.Time `json:"last_correct_review_at,omitempty"`
	NextDueAt           *time.Time `json:"next_due_at,omitempty"`

	TotalReviews   int `json:"total_reviews"`
	CorrectReviews int `json:"correct_reviews"`

	// ConsecutiveCorrect counts correct answers since the last miss.
	// Used to clear the leech flag after sustained recovery.
	ConsecutiveCorrect int `json:"consecutive_correct"`

	// FailedRecently marks words missed within the last three sessions
	// (the leech indicator).
	FailedRecently bool `json:"failed_in_last_3_sessions"`

	// Corpus metadata, supplied read-only by the catalog.
	Frequency     int    `json:"frequency_in_corpus"`
	ChapterNumber int    `json:"chapter_number"`
	ChapterID     string `json:"chapter_id"`
}

// NewRecord creates the initial progress record for a word the learner is
// encountering for the first time: zero mastery, full health, no reviews.
func NewRecord(wordID string) *ProgressRecord {
	return &ProgressRecord{
		WordID: wordID,
		Health: 100,
	}
}

// Accuracy returns the lifetime correct-answer ratio, or 0 for unseen words.
func (r *ProgressRecord) Accuracy() float64 {
	if r.TotalReviews == 0 {
		return 0
	}
	return float64(r.CorrectReviews) / float64(r.TotalReviews)
}

// Unseen reports whether the word has never been reviewed.
func (r *ProgressRecord) Unseen() bool {
	return r.TotalReviews == 0
}

// DaysSinceReview returns full days elapsed since the last review, 0 if the
// word has never been reviewed. Negative elapsed time (clock skew) clamps to 0.
func (r *ProgressRecord) DaysSinceReview(now time.Time) float64 {
	if r.LastReviewedAt == nil {
		return 0
	}
	days := now.Sub(*r.LastReviewedAt).Hours() / 24.0
	if days < 0 {
		return 0
	}
	return days
}

// HoursSinceCorrect returns hours elapsed since the last correct review.
// A word with no correct review yet reports an effectively infinite elapse,
// so time-gated checks always pass for it.
func (r *ProgressRecord) HoursSinceCorrect(now time.Time) float64 {
	if r.LastCorrectReviewAt == nil {
		return math.MaxFloat64
	}
	hours := now.Sub(*r.LastCorrectReviewAt).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}
