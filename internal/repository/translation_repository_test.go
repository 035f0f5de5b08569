package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"polyfaq/backend/internal/repository"
	"polyfaq/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestTranslationRepository_InsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	faqID := testutil.SeedFAQ(t, db, "Q", "A")

	inserted, err := repo.Insert(ctx, faqID, "hi", "Q-hi", "A-hi")
	require.NoError(t, err)
	require.NotZero(t, inserted.ID)
	require.Equal(t, faqID, inserted.FAQID)
	require.Equal(t, "hi", inserted.Language)

	fetched, err := repo.Get(ctx, faqID, "hi")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, inserted.ID, fetched.ID)
	require.Equal(t, "Q-hi", fetched.Question)
	require.Equal(t, "A-hi", fetched.Answer)
}

func TestTranslationRepository_Get_Missing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)

	faqID := testutil.SeedFAQ(t, db, "Q", "A")

	fetched, err := repo.Get(context.Background(), faqID, "hi")
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestTranslationRepository_Insert_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	faqID := testutil.SeedFAQ(t, db, "Q", "A")

	first, err := repo.Insert(ctx, faqID, "hi", "Q-hi", "A-hi")
	require.NoError(t, err)

	// A second insert for the same pair must not create a row or overwrite
	// the existing one; the stored record wins.
	second, err := repo.Insert(ctx, faqID, "hi", "Q-hi-v2", "A-hi-v2")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Q-hi", second.Question)

	all, err := repo.ListByFAQID(ctx, faqID)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestTranslationRepository_Insert_FAQNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)

	_, err := repo.Insert(context.Background(), 404, "hi", "Q", "A")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestTranslationRepository_Insert_TouchesFAQ(t *testing.T) {
	db := testutil.NewTestDB(t)
	faqs := repository.NewFAQRepository(db)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	created, err := faqs.Create(ctx, "Q", "A")
	require.NoError(t, err)

	_, err = repo.Insert(ctx, created.ID, "hi", "Q-hi", "A-hi")
	require.NoError(t, err)

	fetched, err := faqs.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, fetched.UpdatedAt.Before(created.UpdatedAt))
}

func TestTranslationRepository_ListByFAQIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	faq1 := testutil.SeedFAQ(t, db, "Q1", "A1")
	faq2 := testutil.SeedFAQ(t, db, "Q2", "A2")
	faq3 := testutil.SeedFAQ(t, db, "Q3", "A3")

	testutil.SeedTranslation(t, db, faq1, "hi", "Q1-hi", "A1-hi")
	testutil.SeedTranslation(t, db, faq1, "bn", "Q1-bn", "A1-bn")
	testutil.SeedTranslation(t, db, faq2, "hi", "Q2-hi", "A2-hi")

	sets, err := repo.ListByFAQIDs(ctx, []int64{faq1, faq2, faq3})
	require.NoError(t, err)
	require.Len(t, sets[faq1], 2)
	require.Len(t, sets[faq2], 1)
	require.Empty(t, sets[faq3])

	// Insertion order within a set.
	require.Equal(t, "hi", sets[faq1][0].Language)
	require.Equal(t, "bn", sets[faq1][1].Language)
}

func TestTranslationRepository_ListByFAQIDs_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)

	sets, err := repo.ListByFAQIDs(context.Background(), nil)
	require.NoError(t, err)
	require.Empty(t, sets)
}
