package models

import "time"

// PaymentConfirmation — входящее подтверждение платежа от провайдера.
// Все четыре поля обязательны; проверка выполняется до верификации подписи.
// Ключ идемпотентности не хранится: повторная отправка уже применённого
// подтверждения заново переустанавливает срок подписки.
type PaymentConfirmation struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
	UserUID   string `json:"userId" validate:"required"`
}

// Payment — запись журнала о применённом подтверждении платежа.
type Payment struct {
	ID        int       `json:"id"`
	UserUID   string    `json:"user_uid"`
	OrderID   string    `json:"order_id"`
	PaymentID string    `json:"payment_id"`
	CreatedAt time.Time `json:"created_at"`
}
