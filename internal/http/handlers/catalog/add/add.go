// Package add реализует HTTP-обработчик создания вопроса в главе.
// Доступен только администраторам.
package add

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/examprep/examprep-api/internal/catalog"
	"github.com/examprep/examprep-api/internal/http/response"
	"github.com/examprep/examprep-api/internal/lib/sl"
	"github.com/examprep/examprep-api/internal/models"
)

// Service описывает интерфейс бизнес-логики создания вопроса.
type Service interface {
	AddQuestion(ctx context.Context, subject, chapter string, req models.DummyQuestion) (*models.Question, error)
}

// Handler обрабатывает запросы на создание вопроса.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.add"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	subjectName := chi.URLParam(r, "subject")
	chapter := chi.URLParam(r, "chapter")
	if _, ok := catalog.Get(subjectName); !ok {
		log.Error("unknown subject", slog.String("subject", subjectName))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Subject not found"))
		return
	}

	var req models.DummyQuestion
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	question, err := h.service.AddQuestion(r.Context(), subjectName, chapter, req)
	if err != nil {
		log.Error("failed to add question", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to add question"))
		return
	}

	log.Info("question added", slog.Int("id", question.ID), slog.String("chapter", chapter))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"question": question,
	}))
}
