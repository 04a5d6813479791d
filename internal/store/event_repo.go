package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendReview(ctx context.Context, ev ReviewEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO review_events
			(id, word_id, rating, mastery_before, mastery_after, interval_days, reviewed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.WordID, string(ev.Rating), ev.MasteryBefore, ev.MasteryAfter,
		ev.IntervalDays, ev.ReviewedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("append review event: %w", err)
	}
	return nil
}

func (r *eventRepo) WordAccuracy(ctx context.Context, wordID string) (float64, error) {
	var total, correct int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(CASE WHEN rating != 'again' THEN 1 ELSE 0 END), 0)
		 FROM review_events WHERE word_id = ?`, wordID).Scan(&total, &correct)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("word accuracy: %w", err)
	}
	if total == 0 {
		return 0, nil
	}
	return float64(correct) / float64(total), nil
}
