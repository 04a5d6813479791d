package store

import (
	"context"
	"time"

	"github.com/gongduet/voquab/internal/catalog"
	"github.com/gongduet/voquab/internal/vocab"
)

// CatalogRepo manages the vocabulary catalog.
type CatalogRepo interface {
	// ImportChapter upserts a validated chapter and its words.
	// Returns how many words were newly inserted.
	ImportChapter(ctx context.Context, ch *catalog.Chapter) (int, error)

	// CorpusSize returns the total number of catalog words.
	CorpusSize(ctx context.Context) (int, error)

	// Chapters returns all chapter ids ordered by number.
	Chapters(ctx context.Context) ([]ChapterInfo, error)

	// Lemmas returns the word-id → lemma mapping for display.
	Lemmas(ctx context.Context) (map[string]string, error)
}

// ChapterInfo is a catalog chapter summary.
type ChapterInfo struct {
	ID        string
	Number    int
	Title     string
	WordCount int
}

// ProgressRepo manages per-word progress records.
type ProgressRepo interface {
	// Pool returns one ProgressRecord per catalog word, with corpus
	// metadata attached. Words the learner has not started yet come back
	// as fresh records (mastery 0, full health, no reviews).
	Pool(ctx context.Context) ([]*vocab.ProgressRecord, error)

	// Save upserts a record after a rating event.
	Save(ctx context.Context, r *vocab.ProgressRecord) error
}

// ReviewEvent is one appended rating outcome.
type ReviewEvent struct {
	ID            string
	WordID        string
	Rating        vocab.Rating
	MasteryBefore int
	MasteryAfter  int
	IntervalDays  int
	ReviewedAt    time.Time
}

// EventRepo provides append access to the review log.
type EventRepo interface {
	// AppendReview records one rating event. A zero ID is assigned.
	AppendReview(ctx context.Context, ev ReviewEvent) error

	// WordAccuracy returns the logged correct-answer ratio for a word,
	// or 0 with no error if the word has no events.
	WordAccuracy(ctx context.Context, wordID string) (float64, error)
}
