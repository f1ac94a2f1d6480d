package paymentprovider

// CreateOrderRequest — запрос на создание заказа.
// Amount передаётся в минимальных единицах валюты (пайсах).
type CreateOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrderResponse — ответ провайдера на создание заказа.
type CreateOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}
