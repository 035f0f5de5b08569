package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"polyfaq/backend/internal/repository"
	"polyfaq/backend/internal/repository/testutil"
	"polyfaq/backend/internal/service"

	"github.com/stretchr/testify/require"
)

// These tests run the service against a real sqlite store so the lazy-fill
// path exercises the same uniqueness constraint production relies on.

func TestFAQService_RepeatedFill_SingleTranslationPerLanguage(t *testing.T) {
	db := testutil.NewTestDB(t)
	faqs := repository.NewFAQRepository(db)
	translations := repository.NewTranslationRepository(db)
	pages := newFakePageCache()
	synth := &fakeSynthesizer{}
	svc := service.NewFAQService(faqs, translations, pages, synth, nil, 0)
	ctx := context.Background()

	faqID := testutil.SeedFAQ(t, db, "What is polyfaq?", "A multilingual FAQ service.")

	_, err := svc.GetPageAndFill(ctx, "hi", 0, 10)
	require.NoError(t, err)
	require.Equal(t, 2, synth.calls)

	// Clear the cache so the second request takes the full store path.
	delete(pages.store, "faqs:hi:0:10")

	_, err = svc.GetPageAndFill(ctx, "hi", 0, 10)
	require.NoError(t, err)
	// The gap was already filled; the synthesizer is not re-invoked.
	require.Equal(t, 2, synth.calls)

	set, err := translations.ListByFAQID(ctx, faqID)
	require.NoError(t, err)
	require.Len(t, set, 1)
	require.Equal(t, "hi", set[0].Language)
}

func TestFAQService_Create_EagerLanguageSet(t *testing.T) {
	db := testutil.NewTestDB(t)
	faqs := repository.NewFAQRepository(db)
	translations := repository.NewTranslationRepository(db)
	svc := service.NewFAQService(faqs, translations, newFakePageCache(), &fakeSynthesizer{}, []string{"hi", "bn"}, 0)
	ctx := context.Background()

	faq, err := svc.CreateWithTranslations(ctx, "What is FastAPI?", "A Python web framework.")
	require.NoError(t, err)
	require.Len(t, faq.Translations, 2)
	require.Equal(t, "hi", faq.Translations[0].Language)
	require.Equal(t, "bn", faq.Translations[1].Language)

	set, err := translations.ListByFAQID(ctx, faq.ID)
	require.NoError(t, err)
	require.Len(t, set, 2)
}

func TestFAQService_SourcePage_IncludesEagerTranslations(t *testing.T) {
	db := testutil.NewTestDB(t)
	faqs := repository.NewFAQRepository(db)
	translations := repository.NewTranslationRepository(db)
	synth := &fakeSynthesizer{}
	svc := service.NewFAQService(faqs, translations, newFakePageCache(), synth, []string{"hi", "bn"}, 0)
	ctx := context.Background()

	_, err := svc.CreateWithTranslations(ctx, "What is polyfaq?", "A multilingual FAQ service.")
	require.NoError(t, err)
	createCalls := synth.calls

	payload, err := svc.GetPageAndFill(ctx, "", 0, 10)
	require.NoError(t, err)
	// Source-language requests never synthesize.
	require.Equal(t, createCalls, synth.calls)

	var entries []struct {
		QuestionSource string `json:"question_source"`
		AnswerSource   string `json:"answer_source"`
		CreatedAt      string `json:"created_at"`
		UpdatedAt      string `json:"updated_at"`
		Translations   []struct {
			Language string `json:"language"`
		} `json:"translations"`
	}
	require.NoError(t, json.Unmarshal(payload, &entries))
	require.Len(t, entries, 1)
	require.Equal(t, "What is polyfaq?", entries[0].QuestionSource)
	require.NotEmpty(t, entries[0].AnswerSource)
	require.NotEmpty(t, entries[0].CreatedAt)
	require.NotEmpty(t, entries[0].UpdatedAt)
	require.GreaterOrEqual(t, len(entries[0].Translations), 2)
}

func TestFAQService_FallbackProvider_PersistsSourceText(t *testing.T) {
	db := testutil.NewTestDB(t)
	faqs := repository.NewFAQRepository(db)
	translations := repository.NewTranslationRepository(db)
	svc := service.NewFAQService(faqs, translations, newFakePageCache(), &fakeSynthesizer{fail: true}, nil, 0)
	ctx := context.Background()

	faqID := testutil.SeedFAQ(t, db, "What is polyfaq?", "A multilingual FAQ service.")

	payload, err := svc.GetPageAndFill(ctx, "hi", 0, 10)
	require.NoError(t, err)

	var entries []struct {
		Translations []struct {
			Language string `json:"language"`
			Question string `json:"question"`
			Answer   string `json:"answer"`
		} `json:"translations"`
	}
	require.NoError(t, json.Unmarshal(payload, &entries))
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Translations, 1)
	require.Equal(t, "What is polyfaq?", entries[0].Translations[0].Question)

	set, err := translations.ListByFAQID(ctx, faqID)
	require.NoError(t, err)
	require.Len(t, set, 1)
	require.Equal(t, "A multilingual FAQ service.", set[0].Answer)
}
