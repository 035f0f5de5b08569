package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"polyfaq/backend/internal/repository"
	"polyfaq/backend/internal/repository/testutil"

	"github.com/stretchr/testify/require"
)

func TestFAQRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFAQRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, "What is polyfaq?", "A multilingual FAQ service.")
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, "What is polyfaq?", fetched.QuestionSource)
	require.Equal(t, "A multilingual FAQ service.", fetched.AnswerSource)
}

func TestFAQRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFAQRepository(db)

	_, err := repo.GetByID(context.Background(), 12345)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestFAQRepository_List_InsertionOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFAQRepository(db)
	ctx := context.Background()

	first := testutil.SeedFAQ(t, db, "Q1", "A1")
	second := testutil.SeedFAQ(t, db, "Q2", "A2")
	third := testutil.SeedFAQ(t, db, "Q3", "A3")

	faqs, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, faqs, 3)
	require.Equal(t, first, faqs[0].ID)
	require.Equal(t, second, faqs[1].ID)
	require.Equal(t, third, faqs[2].ID)
}

func TestFAQRepository_List_Pagination(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFAQRepository(db)
	ctx := context.Background()

	testutil.SeedFAQ(t, db, "Q1", "A1")
	second := testutil.SeedFAQ(t, db, "Q2", "A2")
	testutil.SeedFAQ(t, db, "Q3", "A3")

	faqs, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, faqs, 1)
	require.Equal(t, second, faqs[0].ID)

	// Zero limit yields an empty page.
	faqs, err = repo.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Empty(t, faqs)

	// Offset past the end yields an empty page.
	faqs, err = repo.List(ctx, 10, 10)
	require.NoError(t, err)
	require.Empty(t, faqs)
}

func TestFAQRepository_Delete_CascadesTranslations(t *testing.T) {
	db := testutil.NewTestDB(t)
	faqs := repository.NewFAQRepository(db)
	translations := repository.NewTranslationRepository(db)
	ctx := context.Background()

	faqID := testutil.SeedFAQ(t, db, "Q", "A")
	testutil.SeedTranslation(t, db, faqID, "hi", "Q-hi", "A-hi")
	testutil.SeedTranslation(t, db, faqID, "bn", "Q-bn", "A-bn")

	err := faqs.Delete(ctx, faqID)
	require.NoError(t, err)

	_, err = faqs.GetByID(ctx, faqID)
	require.ErrorIs(t, err, sql.ErrNoRows)

	remaining, err := translations.ListByFAQID(ctx, faqID)
	require.NoError(t, err)
	require.Empty(t, remaining)
}

func TestFAQRepository_Delete_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewFAQRepository(db)

	err := repo.Delete(context.Background(), 999)
	require.ErrorIs(t, err, sql.ErrNoRows)
}
