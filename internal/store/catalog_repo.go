package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/gongduet/voquab/internal/catalog"
)

type catalogRepo struct {
	db *sql.DB
}

func (r *catalogRepo) ImportChapter(ctx context.Context, ch *catalog.Chapter) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO chapters (id, number, title) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET number = excluded.number, title = excluded.title`,
		ch.ID, ch.Number, ch.Title)
	if err != nil {
		return 0, fmt.Errorf("upsert chapter %s: %w", ch.ID, err)
	}

	// Upserts report one affected row for both insert and update paths,
	// so the new-word count comes from the table-size delta.
	var before int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM words WHERE chapter_id = ?`, ch.ID).Scan(&before); err != nil {
		return 0, fmt.Errorf("count chapter words: %w", err)
	}

	for _, w := range ch.Words {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO words (id, lemma, translation, part_of_speech, occurrences, chapter_id)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(lemma, chapter_id) DO UPDATE SET
				translation = excluded.translation,
				part_of_speech = excluded.part_of_speech,
				occurrences = excluded.occurrences`,
			uuid.New().String(), w.Lemma, w.Translation, w.PartOfSpeech, w.Occurrences, ch.ID)
		if err != nil {
			return 0, fmt.Errorf("upsert word %q: %w", w.Lemma, err)
		}
	}

	var after int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM words WHERE chapter_id = ?`, ch.ID).Scan(&after); err != nil {
		return 0, fmt.Errorf("count chapter words: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return after - before, nil
}

func (r *catalogRepo) CorpusSize(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM words`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}

func (r *catalogRepo) Lemmas(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, lemma FROM words`)
	if err != nil {
		return nil, fmt.Errorf("load lemmas: %w", err)
	}
	defer rows.Close()

	out := map[string]string{}
	for rows.Next() {
		var id, lemma string
		if err := rows.Scan(&id, &lemma); err != nil {
			return nil, err
		}
		out[id] = lemma
	}
	return out, rows.Err()
}

func (r *catalogRepo) Chapters(ctx context.Context) ([]ChapterInfo, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, c.number, c.title, COUNT(w.id)
		 FROM chapters c LEFT JOIN words w ON w.chapter_id = c.id
		 GROUP BY c.id ORDER BY c.number`)
	if err != nil {
		return nil, fmt.Errorf("list chapters: %w", err)
	}
	defer rows.Close()

	var out []ChapterInfo
	for rows.Next() {
		var ci ChapterInfo
		if err := rows.Scan(&ci.ID, &ci.Number, &ci.Title, &ci.WordCount); err != nil {
			return nil, err
		}
		out = append(out, ci)
	}
	return out, rows.Err()
}
