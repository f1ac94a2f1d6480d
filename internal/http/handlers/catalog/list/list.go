// Package list реализует HTTP-обработчик получения вопросов главы.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/examprep/examprep-api/internal/http/response"
	"github.com/examprep/examprep-api/internal/lib/sl"
	"github.com/examprep/examprep-api/internal/models"
)

// Service описывает интерфейс бизнес-логики получения вопросов главы.
type Service interface {
	ListChapterQuestions(ctx context.Context, chapter string) ([]*models.Question, error)
}

// Handler обрабатывает запросы на получение вопросов главы.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	chapter := chi.URLParam(r, "chapter")

	questions, err := h.service.ListChapterQuestions(r.Context(), chapter)
	if err != nil {
		log.Error("failed to list questions", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list questions"))
		return
	}
	if len(questions) == 0 {
		log.Info("no questions found", slog.String("chapter", chapter))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("no questions found for this chapter"))
		return
	}

	log.Info("questions listed", slog.String("chapter", chapter), slog.Int("count", len(questions)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"questions": questions,
	}))
}
