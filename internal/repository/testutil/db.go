// Package testutil provides a real sqlite database for repository tests.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"polyfaq/backend/internal/db"
	"polyfaq/backend/internal/snowflake"

	"github.com/stretchr/testify/require"
)

func init() {
	// Tests share one node; IDs only need to be unique within a process.
	_ = snowflake.Init(1)
}

// NewTestDB opens a migrated sqlite database in a temp directory.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

// SeedFAQ inserts a FAQ row directly and returns its ID.
func SeedFAQ(t *testing.T, conn *sql.DB, questionSource, answerSource string) int64 {
	t.Helper()

	id := snowflake.NextID()
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := conn.ExecContext(
		context.Background(),
		`INSERT INTO faqs (id, question_source, answer_source, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id, questionSource, answerSource, now, now,
	)
	require.NoError(t, err)

	return id
}

// SeedTranslation inserts a translation row directly and returns its ID.
func SeedTranslation(t *testing.T, conn *sql.DB, faqID int64, language, question, answer string) int64 {
	t.Helper()

	id := snowflake.NextID()
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := conn.ExecContext(
		context.Background(),
		`INSERT INTO faq_translations (id, faq_id, language, question, answer, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, faqID, language, question, answer, now,
	)
	require.NoError(t, err)

	return id
}
