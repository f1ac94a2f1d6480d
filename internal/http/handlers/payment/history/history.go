// Package history реализует HTTP-обработчик журнала платежей
// текущего пользователя.
package history

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/examprep/examprep-api/internal/http/middlewarectx"
	"github.com/examprep/examprep-api/internal/http/response"
	"github.com/examprep/examprep-api/internal/lib/sl"
	"github.com/examprep/examprep-api/internal/models"
)

// Service описывает методы сервиса платежей, используемые обработчиком.
type Service interface {
	History(ctx context.Context, userUID string) ([]*models.Payment, error)
}

// Handler обрабатывает запросы журнала платежей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.history"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid missing in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("user identification missing"))
		return
	}

	payments, err := h.service.History(r.Context(), userUID)
	if err != nil {
		log.Error("failed to load payment history", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to load payment history"))
		return
	}

	log.Info("payment history loaded", slog.Int("count", len(payments)))
	render.JSON(w, r, response.OKWithData(map[string]any{"payments": payments}))
}
