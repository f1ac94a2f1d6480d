package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// ActivatedEvent — событие активации подписки, публикуемое после
// успешного подтверждения платежа.
type ActivatedEvent struct {
	UserUID            string    `json:"user_uid"`
	Email              string    `json:"email"`
	PaymentID          string    `json:"payment_id"`
	SubscriptionExpiry time.Time `json:"subscription_expiry"`
}

// Publisher публикует события в exchange entitlements.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher создает Publisher поверх открытого канала.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// PublishActivated публикует событие активации подписки.
func (p *Publisher) PublishActivated(event ActivatedEvent) error {
	const op = "rabbitmq.PublishActivated"
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = p.ch.Publish(
		ExchangeName,
		"subscription.activated",
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
