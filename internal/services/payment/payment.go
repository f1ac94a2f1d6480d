// Package payment реализует верификацию подтверждений платежей и
// применение их результата: активацию подписки, запись в журнал платежей
// и публикацию события для сервиса уведомлений.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/examprep/examprep-api/internal/lib/sl"
	"github.com/examprep/examprep-api/internal/models"
	"github.com/examprep/examprep-api/internal/rabbitmq"
)

// ErrInvalidSignature возвращается, когда подпись подтверждения не совпадает
// с вычисленной по общему секрету.
var ErrInvalidSignature = errors.New("invalid payment signature")

// EntitlementGranter активирует подписку после успешной верификации.
type EntitlementGranter interface {
	Grant(ctx context.Context, userUID string, now time.Time) (*models.User, error)
}

// PaymentRepository ведёт журнал применённых подтверждений.
type PaymentRepository interface {
	SavePayment(ctx context.Context, p models.Payment) (int, error)
	ListPayments(ctx context.Context, userUID string) ([]*models.Payment, error)
}

// Notifier публикует событие активации подписки.
type Notifier interface {
	PublishActivated(event rabbitmq.ActivatedEvent) error
}

// Service связывает верификацию подписи с активацией подписки.
type Service struct {
	keySecret    string
	entitlements EntitlementGranter
	repo         PaymentRepository
	notifier     Notifier
	log          *slog.Logger
}

// New создает новый экземпляр Service. notifier может быть nil,
// тогда события не публикуются.
func New(keySecret string, entitlements EntitlementGranter, repo PaymentRepository, notifier Notifier, log *slog.Logger) *Service {
	return &Service{
		keySecret:    keySecret,
		entitlements: entitlements,
		repo:         repo,
		notifier:     notifier,
		log:          log,
	}
}

// VerifySignature проверяет подлинность подтверждения платежа.
//
// Каноническое сообщение — orderID + "|" + paymentID; от него считается
// HMAC-SHA256 с секретом провайдера в нижнем hex. Сравнение выполняется
// через hmac.Equal за постоянное время. Сетевых вызовов нет.
func (s *Service) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ConfirmPayment проверяет подпись подтверждения и при успехе активирует
// подписку пользователя на момент now. Переход состояния Trial|Expired →
// Subscribed происходит только здесь.
//
// Запись в журнал платежей и публикация события не влияют на результат:
// их ошибки логируются и не возвращаются вызывающему.
func (s *Service) ConfirmPayment(ctx context.Context, conf models.PaymentConfirmation, now time.Time) (*models.User, error) {
	const op = "payment.ConfirmPayment"

	if !s.VerifySignature(conf.OrderID, conf.PaymentID, conf.Signature) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidSignature)
	}

	user, err := s.entitlements.Grant(ctx, conf.UserUID, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.repo.SavePayment(ctx, models.Payment{
		UserUID:   user.UID,
		OrderID:   conf.OrderID,
		PaymentID: conf.PaymentID,
	}); err != nil {
		s.log.Warn("failed to save payment record", sl.Err(err))
	}

	if s.notifier != nil {
		event := rabbitmq.ActivatedEvent{
			UserUID:   user.UID,
			Email:     user.Email,
			PaymentID: conf.PaymentID,
		}
		// Grant всегда возвращает пользователя с установленным сроком,
		// но нулевое значение в событии лучше паники.
		if user.SubscriptionExpiry != nil {
			event.SubscriptionExpiry = *user.SubscriptionExpiry
		}
		if err := s.notifier.PublishActivated(event); err != nil {
			s.log.Warn("failed to publish activation event", sl.Err(err))
		}
	}

	return user, nil
}

// History возвращает журнал применённых платежей пользователя.
func (s *Service) History(ctx context.Context, userUID string) ([]*models.Payment, error) {
	const op = "payment.History"

	payments, err := s.repo.ListPayments(ctx, userUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return payments, nil
}
