// Package subject реализует HTTP-обработчик получения структуры предмета:
// части, главы и сведения о доступе текущего пользователя.
package subject

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/examprep/examprep-api/internal/catalog"
	"github.com/examprep/examprep-api/internal/http/middlewarectx"
	"github.com/examprep/examprep-api/internal/http/response"
)

// Handler обрабатывает запросы на получение структуры предмета.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.subject"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	subjectName := chi.URLParam(r, "subject")
	subj, ok := catalog.Get(subjectName)
	if !ok {
		log.Error("unknown subject", slog.String("subject", subjectName))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("Subject not found"))
		return
	}

	decision, _ := middlewarectx.DecisionFromContext(r.Context())
	subscriptionActive := false
	if user, ok := middlewarectx.UserFromContext(r.Context()); ok {
		subscriptionActive = user.SubscriptionActive
	}

	log.Info("subject structure requested", slog.String("subject", subjectName))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"subject":            subj,
		"subscriptionActive": subscriptionActive,
		"remainingTime":      decision.RemainingTrialMillis,
	}))
}
