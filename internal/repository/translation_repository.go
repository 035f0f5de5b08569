package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"polyfaq/backend/internal/model"
	"polyfaq/backend/internal/snowflake"
)

type TranslationRepository interface {
	// Get returns the translation for (faqID, language), or nil when none
	// exists.
	Get(ctx context.Context, faqID int64, language string) (*model.Translation, error)
	ListByFAQID(ctx context.Context, faqID int64) ([]model.Translation, error)
	// ListByFAQIDs returns translation sets for a page of FAQs, keyed by
	// FAQ ID. Translations within a set are ordered by id (insertion order).
	ListByFAQIDs(ctx context.Context, faqIDs []int64) (map[int64][]model.Translation, error)
	// Insert adds a translation for (faqID, language). The insert is
	// idempotent: if another writer already inserted the pair, the existing
	// row is returned unchanged. Returns sql.ErrNoRows when the FAQ does
	// not exist. The parent FAQ's updated_at is refreshed.
	Insert(ctx context.Context, faqID int64, language, question, answer string) (model.Translation, error)
}

type translationRepository struct {
	db dbtx
}

func NewTranslationRepository(db dbtx) TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) Get(ctx context.Context, faqID int64, language string) (*model.Translation, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, faq_id, language, question, answer, created_at
		 FROM faq_translations WHERE faq_id = ? AND language = ?`,
		faqID, language,
	)

	var t model.Translation
	var createdAt string

	err := row.Scan(&t.ID, &t.FAQID, &t.Language, &t.Question, &t.Answer, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	t.CreatedAt, _ = parseTime(createdAt)

	return &t, nil
}

func (r *translationRepository) ListByFAQID(ctx context.Context, faqID int64) ([]model.Translation, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, faq_id, language, question, answer, created_at
		 FROM faq_translations WHERE faq_id = ? ORDER BY id ASC`,
		faqID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectTranslations(rows)
}

func (r *translationRepository) ListByFAQIDs(ctx context.Context, faqIDs []int64) (map[int64][]model.Translation, error) {
	result := make(map[int64][]model.Translation)
	if len(faqIDs) == 0 {
		return result, nil
	}

	// Build query with placeholders
	query := `SELECT id, faq_id, language, question, answer, created_at
	          FROM faq_translations WHERE faq_id IN (`
	args := make([]interface{}, 0, len(faqIDs))

	for i, id := range faqIDs {
		if i > 0 {
			query += ","
		}
		query += "?"
		args = append(args, id)
	}
	query += ") ORDER BY id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	translations, err := collectTranslations(rows)
	if err != nil {
		return nil, err
	}

	for _, t := range translations {
		result[t.FAQID] = append(result[t.FAQID], t)
	}

	return result, nil
}

func (r *translationRepository) Insert(ctx context.Context, faqID int64, language, question, answer string) (model.Translation, error) {
	now := time.Now().UTC()

	// Touching the parent first both refreshes updated_at (the translation
	// set is part of the FAQ's mutable state) and doubles as the existence
	// check.
	result, err := r.db.ExecContext(
		ctx,
		`UPDATE faqs SET updated_at = ? WHERE id = ?`,
		formatTime(now),
		faqID,
	)
	if err != nil {
		return model.Translation{}, fmt.Errorf("touch faq: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return model.Translation{}, err
	}
	if affected == 0 {
		return model.Translation{}, sql.ErrNoRows
	}

	id := snowflake.NextID()
	result, err = r.db.ExecContext(
		ctx,
		`INSERT INTO faq_translations (id, faq_id, language, question, answer, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(faq_id, language) DO NOTHING`,
		id, faqID, language, question, answer, formatTime(now),
	)
	if err != nil {
		return model.Translation{}, fmt.Errorf("insert translation: %w", err)
	}

	affected, err = result.RowsAffected()
	if err != nil {
		return model.Translation{}, err
	}
	if affected == 0 {
		// Lost the race with a concurrent filler; the stored row wins.
		existing, err := r.Get(ctx, faqID, language)
		if err != nil {
			return model.Translation{}, err
		}
		if existing == nil {
			return model.Translation{}, sql.ErrNoRows
		}
		return *existing, nil
	}

	return model.Translation{
		ID:        id,
		FAQID:     faqID,
		Language:  language,
		Question:  question,
		Answer:    answer,
		CreatedAt: now,
	}, nil
}

func collectTranslations(rows *sql.Rows) ([]model.Translation, error) {
	var translations []model.Translation
	for rows.Next() {
		var t model.Translation
		var createdAt string

		if err := rows.Scan(&t.ID, &t.FAQID, &t.Language, &t.Question, &t.Answer, &createdAt); err != nil {
			return nil, err
		}

		t.CreatedAt, _ = parseTime(createdAt)
		translations = append(translations, t)
	}

	return translations, rows.Err()
}
