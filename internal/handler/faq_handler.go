package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"polyfaq/backend/internal/model"
	"polyfaq/backend/internal/service"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type FAQHandler struct {
	service service.FAQService
}

func NewFAQHandler(service service.FAQService) *FAQHandler {
	return &FAQHandler{service: service}
}

func (h *FAQHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/faqs", h.Create)
	g.GET("/faqs", h.List)
	g.DELETE("/faqs/:id", h.Delete)
}

type createFAQRequest struct {
	QuestionSource string `json:"question_source"`
	AnswerSource   string `json:"answer_source"`
}

type translationResponse struct {
	ID       int64  `json:"id"`
	EntryID  int64  `json:"entry_id"`
	Language string `json:"language"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type faqResponse struct {
	ID             int64                 `json:"id"`
	QuestionSource string                `json:"question_source"`
	AnswerSource   string                `json:"answer_source"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
	Translations   []translationResponse `json:"translations"`
}

// Create creates a FAQ and eagerly translates it into the configured
// language set.
// @Summary Create FAQ
// @Description Create a FAQ entry with eager translations
// @Tags faqs
// @Accept json
// @Produce json
// @Success 200 {object} faqResponse
// @Failure 400 {object} errorResponse
// @Router /faqs [post]
func (h *FAQHandler) Create(c echo.Context) error {
	var req createFAQRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}

	faq, err := h.service.CreateWithTranslations(c.Request().Context(), req.QuestionSource, req.AnswerSource)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, toFAQResponse(faq))
}

// List returns a page of FAQs. When lang names a non-source language,
// missing translations are synthesized and persisted before the page is
// returned; the serialized page is cached for the configured TTL.
// @Summary List FAQs
// @Description Get a page of FAQs with their translations
// @Tags faqs
// @Produce json
// @Param lang query string false "Target language (2-letter code)"
// @Param skip query int false "Pagination offset"
// @Param limit query int false "Page size (default 10)"
// @Success 200 {array} faqResponse
// @Failure 400 {object} errorResponse
// @Router /faqs [get]
func (h *FAQHandler) List(c echo.Context) error {
	offset := 0
	limit := defaultPageLimit

	if raw := c.QueryParam("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid skip"})
		}
		offset = n
	}

	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid limit"})
		}
		limit = n
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	payload, err := h.service.GetPageAndFill(c.Request().Context(), c.QueryParam("lang"), offset, limit)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSONBlob(http.StatusOK, payload)
}

// Delete removes a FAQ and all its translations. Cached pages referencing
// it remain until their TTL expires.
// @Summary Delete FAQ
// @Tags faqs
// @Param id path int true "FAQ ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /faqs/{id} [delete]
func (h *FAQHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toFAQResponse(faq model.FAQ) faqResponse {
	translations := make([]translationResponse, 0, len(faq.Translations))
	for _, t := range faq.Translations {
		translations = append(translations, translationResponse{
			ID:       t.ID,
			EntryID:  t.FAQID,
			Language: t.Language,
			Question: t.Question,
			Answer:   t.Answer,
		})
	}
	return faqResponse{
		ID:             faq.ID,
		QuestionSource: faq.QuestionSource,
		AnswerSource:   faq.AnswerSource,
		CreatedAt:      faq.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      faq.UpdatedAt.UTC().Format(time.RFC3339),
		Translations:   translations,
	}
}
