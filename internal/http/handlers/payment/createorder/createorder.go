// Package createorder реализует HTTP-обработчик создания заказа на оплату
// у платёжного провайдера.
package createorder

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/examprep/examprep-api/internal/http/response"
	"github.com/examprep/examprep-api/internal/lib/sl"
	"github.com/examprep/examprep-api/internal/paymentprovider"
)

// Request — входные данные для создания заказа.
// Amount задаётся в рупиях и конвертируется в пайсы при обращении к провайдеру.
type Request struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency"`
}

// OrderCreator описывает интерфейс клиента платёжного провайдера.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req paymentprovider.CreateOrderRequest) (*paymentprovider.CreateOrderResponse, error)
}

// Handler обрабатывает запросы на создание заказа на оплату.
type Handler struct {
	log      *slog.Logger
	provider OrderCreator
	validate *validator.Validate
}

// New создает новый Handler с переданным логгером и клиентом провайдера.
func New(log *slog.Logger, provider OrderCreator) *Handler {
	return &Handler{
		log:      log,
		provider: provider,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.createorder"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	order, err := h.provider.CreateOrder(r.Context(), paymentprovider.CreateOrderRequest{
		Amount:   req.Amount * 100,
		Currency: currency,
		Receipt:  "receipt_" + uuid.NewString(),
	})
	if err != nil {
		log.Error("failed to create order", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create order"))
		return
	}

	log.Info("order created", slog.String("order_id", order.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"orderId":  order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
	}))
}
