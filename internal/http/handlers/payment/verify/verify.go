// Package verify реализует HTTP-обработчик подтверждения платежа:
// проверку подписи провайдера и активацию подписки пользователя.
package verify

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/examprep/examprep-api/internal/http/response"
	"github.com/examprep/examprep-api/internal/lib/sl"
	"github.com/examprep/examprep-api/internal/models"
	"github.com/examprep/examprep-api/internal/services/payment"
	"github.com/examprep/examprep-api/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики подтверждения платежа.
type Service interface {
	ConfirmPayment(ctx context.Context, conf models.PaymentConfirmation, now time.Time) (*models.User, error)
}

// Handler обрабатывает подтверждения платежей от провайдера.
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
	const op = "handlers.payment.verify"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var conf models.PaymentConfirmation
	if err := json.NewDecoder(r.Body).Decode(&conf); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(conf); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.service.ConfirmPayment(r.Context(), conf, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidSignature):
			log.Error("invalid payment signature", slog.String("order_id", conf.OrderID))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("payment verification failed"))
		case errors.Is(err, repository.ErrUserNotFound):
			log.Error("user not found", slog.String("user_uid", conf.UserUID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
		default:
			log.Error("failed to confirm payment", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to confirm payment"))
		}
		return
	}

	log.Info("payment confirmed", slog.String("user_uid", user.UID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"subscriptionActive": user.SubscriptionActive,
		"subscriptionExpiry": user.SubscriptionExpiry,
	}))
}
