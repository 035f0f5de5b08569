package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS faqs (
  id INTEGER PRIMARY KEY,
  question_source TEXT NOT NULL,
  answer_source TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS faq_translations (
  id INTEGER PRIMARY KEY,
  faq_id INTEGER NOT NULL,
  language TEXT NOT NULL,
  question TEXT NOT NULL,
  answer TEXT NOT NULL,
  created_at TEXT NOT NULL,
  FOREIGN KEY (faq_id) REFERENCES faqs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_faq_translations_faq_id ON faq_translations(faq_id);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: unique index on (faq_id, language). This is what makes
	// concurrent lazy-fill inserts for the same pair a benign no-op rather
	// than a duplicate row.
	if _, err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_faq_translations_faq_language ON faq_translations(faq_id, language)`); err != nil {
		return fmt.Errorf("create idx_faq_translations_faq_language: %w", err)
	}

	// Migration 2: language lookup during gap detection filters by language.
	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_faq_translations_language ON faq_translations(language)`); err != nil {
		return fmt.Errorf("create idx_faq_translations_language: %w", err)
	}

	return nil
}
