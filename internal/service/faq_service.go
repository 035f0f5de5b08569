package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"polyfaq/backend/internal/cache"
	"polyfaq/backend/internal/logger"
	"polyfaq/backend/internal/model"
	"polyfaq/backend/internal/repository"
	"polyfaq/backend/internal/translate"
)

// SourceLanguage is the canonical language of stored FAQ text.
const SourceLanguage = "en"

// DefaultCacheTTL applies when the service is constructed without one.
const DefaultCacheTTL = 300 * time.Second

// FAQService owns the retrieval path: read-through page cache over the FAQ
// store with lazy, persisted translation synthesis.
type FAQService interface {
	// CreateWithTranslations creates a FAQ and eagerly synthesizes
	// translations for the configured language set. The returned FAQ
	// carries its full translation set.
	CreateWithTranslations(ctx context.Context, questionSource, answerSource string) (model.FAQ, error)

	// GetPageAndFill returns the serialized page for (lang, offset, limit).
	// Despite being a read, it may write: on a cache miss it synthesizes
	// and persists any translations the requested language is missing,
	// then repopulates the cache. An empty or "en" lang skips the fill.
	GetPageAndFill(ctx context.Context, lang string, offset, limit int) ([]byte, error)

	// Delete removes a FAQ and all its translations. Cached pages are not
	// invalidated; they age out with the TTL.
	Delete(ctx context.Context, id int64) error
}

type faqService struct {
	faqs         repository.FAQRepository
	translations repository.TranslationRepository
	pages        cache.PageCache
	synth        translate.Synthesizer
	langs        []string
	ttl          time.Duration
	group        singleflight.Group
}

// NewFAQService creates a new FAQ service. langs is the eager translation
// set used on creation; ttl bounds cached page lifetime.
func NewFAQService(
	faqs repository.FAQRepository,
	translations repository.TranslationRepository,
	pages cache.PageCache,
	synth translate.Synthesizer,
	langs []string,
	ttl time.Duration,
) FAQService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &faqService{
		faqs:         faqs,
		translations: translations,
		pages:        pages,
		synth:        synth,
		langs:        langs,
		ttl:          ttl,
	}
}

func (s *faqService) CreateWithTranslations(ctx context.Context, questionSource, answerSource string) (model.FAQ, error) {
	if strings.TrimSpace(questionSource) == "" || strings.TrimSpace(answerSource) == "" {
		return model.FAQ{}, ErrInvalid
	}

	faq, err := s.faqs.Create(ctx, questionSource, answerSource)
	if err != nil {
		return model.FAQ{}, fmt.Errorf("create faq: %w", err)
	}

	for _, lang := range s.langs {
		// Question and answer are independent: one falling back must not
		// stop the other from being attempted.
		question, _ := s.synth.Synthesize(ctx, faq.QuestionSource, lang)
		answer, _ := s.synth.Synthesize(ctx, faq.AnswerSource, lang)

		record, err := s.translations.Insert(ctx, faq.ID, lang, question, answer)
		if err != nil {
			return model.FAQ{}, fmt.Errorf("insert translation %q: %w", lang, err)
		}
		faq.Translations = append(faq.Translations, record)
	}

	logger.Info("faq created", "module", "service", "action", "create", "resource", "faq", "result", "ok", "faq_id", faq.ID, "languages", len(faq.Translations))

	return faq, nil
}

func (s *faqService) GetPageAndFill(ctx context.Context, lang string, offset, limit int) ([]byte, error) {
	if offset < 0 || limit < 0 {
		return nil, ErrInvalid
	}
	lang = normalizeLang(lang)
	if lang != SourceLanguage && len(lang) != 2 {
		return nil, ErrInvalid
	}

	key := pageKey(lang, offset, limit)

	payload, ok, err := s.pages.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("page cache get: %w", err)
	}
	if ok {
		logger.Debug("faq page served from cache", "module", "service", "action", "fetch", "resource", "faq", "result", "ok", "key", key)
		return payload, nil
	}

	// Collapse concurrent misses for the same key so one build serves all
	// in-flight callers. Cross-process races remain and are resolved by the
	// store's (faq_id, language) uniqueness.
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.buildPage(ctx, lang, offset, limit, key)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *faqService) Delete(ctx context.Context, id int64) error {
	if err := s.faqs.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	logger.Info("faq deleted", "module", "service", "action", "delete", "resource", "faq", "result", "ok", "faq_id", id)
	return nil
}

// buildPage is the cache-miss path: store read, gap fill, serialize, cache
// write.
func (s *faqService) buildPage(ctx context.Context, lang string, offset, limit int, key string) ([]byte, error) {
	faqs, err := s.faqs.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}

	ids := make([]int64, 0, len(faqs))
	for _, faq := range faqs {
		ids = append(ids, faq.ID)
	}

	sets, err := s.translations.ListByFAQIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}

	if lang != SourceLanguage {
		filled := 0
		for _, faq := range faqs {
			if hasLanguage(sets[faq.ID], lang) {
				// Existing translations are never regenerated.
				continue
			}

			question, _ := s.synth.Synthesize(ctx, faq.QuestionSource, lang)
			answer, _ := s.synth.Synthesize(ctx, faq.AnswerSource, lang)

			record, err := s.translations.Insert(ctx, faq.ID, lang, question, answer)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return nil, ErrNotFound
				}
				return nil, fmt.Errorf("insert translation %q: %w", lang, err)
			}
			sets[faq.ID] = append(sets[faq.ID], record)
			filled++
		}
		if filled > 0 {
			logger.Info("faq translation gaps filled", "module", "service", "action", "fill", "resource", "faq", "result", "ok", "lang", lang, "count", filled)
		}
	}

	payload, err := serializePage(faqs, sets)
	if err != nil {
		return nil, fmt.Errorf("serialize page: %w", err)
	}

	// Unconditional write, even for an empty page: a cached empty page is
	// as valid as any other for the TTL window.
	if err := s.pages.Set(ctx, key, payload, s.ttl); err != nil {
		return nil, fmt.Errorf("page cache set: %w", err)
	}

	logger.Debug("faq page rebuilt", "module", "service", "action", "fetch", "resource", "faq", "result", "ok", "key", key, "entries", len(faqs))

	return payload, nil
}

// Wire layout of a cached/returned page. Timestamps are RFC3339 UTC.
type pageTranslation struct {
	ID       int64  `json:"id"`
	EntryID  int64  `json:"entry_id"`
	Language string `json:"language"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type pageEntry struct {
	ID             int64             `json:"id"`
	QuestionSource string            `json:"question_source"`
	AnswerSource   string            `json:"answer_source"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
	Translations   []pageTranslation `json:"translations"`
}

func serializePage(faqs []model.FAQ, sets map[int64][]model.Translation) ([]byte, error) {
	entries := make([]pageEntry, 0, len(faqs))
	for _, faq := range faqs {
		translations := make([]pageTranslation, 0, len(sets[faq.ID]))
		for _, t := range sets[faq.ID] {
			translations = append(translations, pageTranslation{
				ID:       t.ID,
				EntryID:  t.FAQID,
				Language: t.Language,
				Question: t.Question,
				Answer:   t.Answer,
			})
		}
		entries = append(entries, pageEntry{
			ID:             faq.ID,
			QuestionSource: faq.QuestionSource,
			AnswerSource:   faq.AnswerSource,
			CreatedAt:      faq.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:      faq.UpdatedAt.UTC().Format(time.RFC3339),
			Translations:   translations,
		})
	}
	return json.Marshal(entries)
}

func pageKey(lang string, offset, limit int) string {
	return fmt.Sprintf("faqs:%s:%d:%d", lang, offset, limit)
}

func normalizeLang(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return SourceLanguage
	}
	return lang
}

func hasLanguage(translations []model.Translation, lang string) bool {
	for _, t := range translations {
		if t.Language == lang {
			return true
		}
	}
	return false
}
