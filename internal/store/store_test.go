package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gongduet/voquab/internal/catalog"
	"github.com/gongduet/voquab/internal/vocab"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testChapter() *catalog.Chapter {
	return &catalog.Chapter{
		ID:     "ch-01",
		Number: 1,
		Title:  "Cuando yo tenía seis años",
		Words: []catalog.Word{
			{Lemma: "tener", Translation: "to have", PartOfSpeech: "verb", Occurrences: 42},
			{Lemma: "selva", Translation: "jungle", Occurrences: 3},
			{Lemma: "dibujo", Translation: "drawing", Occurrences: 9},
		},
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	var fk string
	require.NoError(t, s.DB().QueryRow("PRAGMA foreign_keys").Scan(&fk))
	require.Equal(t, "1", fk)
}

func TestImportChapter_InsertAndReimport(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	n, err := s.Catalog().ImportChapter(ctx, testChapter())
	require.NoError(t, err)
	require.Equal(t, 3, n)

	size, err := s.Catalog().CorpusSize(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, size)

	// Re-import updates in place, no duplicates.
	ch := testChapter()
	ch.Words[0].Translation = "to have, to hold"
	n, err = s.Catalog().ImportChapter(ctx, ch)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	size, err = s.Catalog().CorpusSize(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, size)
}

func TestChapters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, err := s.Catalog().ImportChapter(ctx, testChapter())
	require.NoError(t, err)

	chs, err := s.Catalog().Chapters(ctx)
	require.NoError(t, err)
	require.Len(t, chs, 1)
	require.Equal(t, "ch-01", chs[0].ID)
	require.Equal(t, 3, chs[0].WordCount)
}

func TestPool_FreshRecordsForUnstartedWords(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, err := s.Catalog().ImportChapter(ctx, testChapter())
	require.NoError(t, err)

	pool, err := s.Progress().Pool(ctx)
	require.NoError(t, err)
	require.Len(t, pool, 3)
	for _, rec := range pool {
		require.Equal(t, 0, rec.MasteryLevel)
		require.Equal(t, float64(100), rec.Health)
		require.True(t, rec.Unseen())
		require.Equal(t, 1, rec.ChapterNumber)
		require.Equal(t, "ch-01", rec.ChapterID)
		require.Nil(t, rec.LastReviewedAt)
	}
}

func TestSaveAndReloadProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, err := s.Catalog().ImportChapter(ctx, testChapter())
	require.NoError(t, err)

	pool, err := s.Progress().Pool(ctx)
	require.NoError(t, err)

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	rec := pool[0]
	rec.MasteryLevel = 30
	rec.Health = 100
	rec.TotalReviews = 4
	rec.CorrectReviews = 3
	rec.ConsecutiveCorrect = 2
	rec.FailedRecently = true
	rec.LastReviewedAt = &now
	rec.LastCorrectReviewAt = &now
	due := now.AddDate(0, 0, 3)
	rec.NextDueAt = &due
	require.NoError(t, s.Progress().Save(ctx, rec))

	pool, err = s.Progress().Pool(ctx)
	require.NoError(t, err)

	var got *vocab.ProgressRecord
	for _, r := range pool {
		if r.WordID == rec.WordID {
			got = r
		}
	}
	require.NotNil(t, got)
	require.Equal(t, 30, got.MasteryLevel)
	require.Equal(t, 4, got.TotalReviews)
	require.Equal(t, 3, got.CorrectReviews)
	require.Equal(t, 2, got.ConsecutiveCorrect)
	require.True(t, got.FailedRecently)
	require.NotNil(t, got.LastReviewedAt)
	require.True(t, got.LastReviewedAt.Equal(now))
	require.NotNil(t, got.NextDueAt)
	require.True(t, got.NextDueAt.Equal(due))
}

func TestEvents_AppendAndAccuracy(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	_, err := s.Catalog().ImportChapter(ctx, testChapter())
	require.NoError(t, err)

	pool, err := s.Progress().Pool(ctx)
	require.NoError(t, err)
	wordID := pool[0].WordID
	now := time.Now()

	events := []vocab.Rating{vocab.RatingEasy, vocab.RatingAgain, vocab.RatingMedium, vocab.RatingHard}
	for _, rating := range events {
		require.NoError(t, s.Events().AppendReview(ctx, ReviewEvent{
			WordID:     wordID,
			Rating:     rating,
			ReviewedAt: now,
		}))
	}

	acc, err := s.Events().WordAccuracy(ctx, wordID)
	require.NoError(t, err)
	require.InDelta(t, 0.75, acc, 0.001)

	acc, err = s.Events().WordAccuracy(ctx, "no-such-word")
	require.NoError(t, err)
	require.Zero(t, acc)
}
