package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"polyfaq/backend/internal/model"
	"polyfaq/backend/internal/snowflake"
)

type FAQRepository interface {
	Create(ctx context.Context, questionSource, answerSource string) (model.FAQ, error)
	GetByID(ctx context.Context, id int64) (model.FAQ, error)
	// List returns FAQs in insertion order. A limit of zero or less yields
	// an empty page.
	List(ctx context.Context, offset, limit int) ([]model.FAQ, error)
	// Delete removes a FAQ and, via the schema cascade, all its translations.
	Delete(ctx context.Context, id int64) error
}

type faqRepository struct {
	db dbtx
}

func NewFAQRepository(db dbtx) FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) Create(ctx context.Context, questionSource, answerSource string) (model.FAQ, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO faqs (id, question_source, answer_source, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id,
		questionSource,
		answerSource,
		formatTime(now),
		formatTime(now),
	)
	if err != nil {
		return model.FAQ{}, fmt.Errorf("create faq: %w", err)
	}

	return model.FAQ{
		ID:             id,
		QuestionSource: questionSource,
		AnswerSource:   answerSource,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func (r *faqRepository) GetByID(ctx context.Context, id int64) (model.FAQ, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, question_source, answer_source, created_at, updated_at
		 FROM faqs WHERE id = ?`,
		id,
	)
	return scanFAQ(row)
}

func (r *faqRepository) List(ctx context.Context, offset, limit int) ([]model.FAQ, error) {
	if limit <= 0 {
		return nil, nil
	}

	// Snowflake IDs are time-ordered, so id ASC is creation order.
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, question_source, answer_source, created_at, updated_at
		 FROM faqs ORDER BY id ASC LIMIT ? OFFSET ?`,
		limit,
		offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var faqs []model.FAQ
	for rows.Next() {
		faq, err := scanFAQRows(rows)
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, faq)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return faqs, nil
}

func (r *faqRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM faqs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanFAQ(row *sql.Row) (model.FAQ, error) {
	var f model.FAQ
	var createdAt, updatedAt string

	err := row.Scan(&f.ID, &f.QuestionSource, &f.AnswerSource, &createdAt, &updatedAt)
	if err != nil {
		return model.FAQ{}, err
	}

	f.CreatedAt, _ = parseTime(createdAt)
	f.UpdatedAt, _ = parseTime(updatedAt)

	return f, nil
}

func scanFAQRows(rows *sql.Rows) (model.FAQ, error) {
	var f model.FAQ
	var createdAt, updatedAt string

	err := rows.Scan(&f.ID, &f.QuestionSource, &f.AnswerSource, &createdAt, &updatedAt)
	if err != nil {
		return model.FAQ{}, err
	}

	f.CreatedAt, _ = parseTime(createdAt)
	f.UpdatedAt, _ = parseTime(updatedAt)

	return f, nil
}
