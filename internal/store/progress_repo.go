package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gongduet/voquab/internal/vocab"
)

type progressRepo struct {
	db *sql.DB
}

func (r *progressRepo) Pool(ctx context.Context) ([]*vocab.ProgressRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT w.id, w.occurrences, w.chapter_id, c.number,
			p.mastery_level, p.health,
			p.last_reviewed_at, p.last_correct_review_at, p.next_due_at,
			p.total_reviews, p.correct_reviews, p.consecutive_correct, p.failed_recently
		 FROM words w
		 JOIN chapters c ON c.id = w.chapter_id
		 LEFT JOIN progress p ON p.word_id = w.id
		 ORDER BY c.number, w.lemma`)
	if err != nil {
		return nil, fmt.Errorf("load pool: %w", err)
	}
	defer rows.Close()

	var pool []*vocab.ProgressRecord
	for rows.Next() {
		rec := vocab.NewRecord("")
		var (
			mastery, total, correct, streak sql.NullInt64
			health                          sql.NullFloat64
			lastReviewed, lastCorrect, due  sql.NullString
			failed                          sql.NullBool
		)
		err := rows.Scan(&rec.WordID, &rec.Frequency, &rec.ChapterID, &rec.ChapterNumber,
			&mastery, &health, &lastReviewed, &lastCorrect, &due,
			&total, &correct, &streak, &failed)
		if err != nil {
			return nil, fmt.Errorf("scan pool row: %w", err)
		}

		// A missing progress row means the word was never started; the
		// fresh-record defaults stand.
		if mastery.Valid {
			rec.MasteryLevel = int(mastery.Int64)
			rec.Health = health.Float64
			rec.TotalReviews = int(total.Int64)
			rec.CorrectReviews = int(correct.Int64)
			rec.ConsecutiveCorrect = int(streak.Int64)
			rec.FailedRecently = failed.Bool
			rec.LastReviewedAt = parseTime(lastReviewed)
			rec.LastCorrectReviewAt = parseTime(lastCorrect)
			rec.NextDueAt = parseTime(due)
		}
		pool = append(pool, rec)
	}
	return pool, rows.Err()
}

func (r *progressRepo) Save(ctx context.Context, rec *vocab.ProgressRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO progress (word_id, mastery_level, health,
			last_reviewed_at, last_correct_review_at, next_due_at,
			total_reviews, correct_reviews, consecutive_correct, failed_recently)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(word_id) DO UPDATE SET
			mastery_level = excluded.mastery_level,
			health = excluded.health,
			last_reviewed_at = excluded.last_reviewed_at,
			last_correct_review_at = excluded.last_correct_review_at,
			next_due_at = excluded.next_due_at,
			total_reviews = excluded.total_reviews,
			correct_reviews = excluded.correct_reviews,
			consecutive_correct = excluded.consecutive_correct,
			failed_recently = excluded.failed_recently`,
		rec.WordID, rec.MasteryLevel, rec.Health,
		formatTime(rec.LastReviewedAt), formatTime(rec.LastCorrectReviewAt), formatTime(rec.NextDueAt),
		rec.TotalReviews, rec.CorrectReviews, rec.ConsecutiveCorrect, rec.FailedRecently)
	if err != nil {
		return fmt.Errorf("save progress for %s: %w", rec.WordID, err)
	}
	return nil
}

func parseTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}

func formatTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
