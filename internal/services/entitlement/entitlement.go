// Package entitlement содержит бизнес-логику доступа к каталогу:
// вычисление решения о доступе по пробному периоду и подписке,
// а также активацию подписки после подтверждённого платежа.
package entitlement

import (
	"context"
	"log/slog"
	"time"

	"github.com/examprep/examprep-api/internal/models"
)

const (
	// TrialDuration — фиксированная длительность пробного периода.
	TrialDuration = time.Hour
	// SubscriptionTerm — срок подписки, отсчитываемый от момента активации.
	// Повторная активация не прибавляет время, а переустанавливает срок.
	SubscriptionTerm = 30 * 24 * time.Hour
)

// UserRepository определяет методы хранилища, необходимые сервису.
type UserRepository interface {
	// GetUser возвращает пользователя по UID или ошибку, если не найден.
	GetUser(ctx context.Context, userUID string) (*models.User, error)
	// ActivateSubscription включает подписку и переустанавливает дату истечения.
	ActivateSubscription(ctx context.Context, userUID string, expiry time.Time) (*models.User, error)
}

// Service реализует проверку доступа и активацию подписки.
type Service struct {
	repo UserRepository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo UserRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Evaluate вычисляет решение о доступе для пользователя на момент now.
//
// Активная подписка даёт доступ безусловно: дата истечения здесь не
// перепроверяется — это сохранённое текущее поведение, подписка в этом
// потоке фактически не истекает. Без подписки доступ определяется окном
// пробного периода; отсутствующее время начала трактуется как истёкший
// пробный период.
//
// Функция чистая: без побочных эффектов и обращений к хранилищу.
func Evaluate(user *models.User, now time.Time) models.AccessDecision {
	if user.SubscriptionActive {
		return models.AccessDecision{Granted: true, RemainingTrialMillis: 0}
	}
	if user.TrialStartTime == nil {
		return models.AccessDecision{Granted: false, RemainingTrialMillis: 0}
	}
	trialEnd := user.TrialStartTime.Add(TrialDuration)
	if now.After(trialEnd) {
		return models.AccessDecision{Granted: false, RemainingTrialMillis: 0}
	}
	return models.AccessDecision{
		Granted:              true,
		RemainingTrialMillis: trialEnd.Sub(now).Milliseconds(),
	}
}

// Check загружает пользователя и вычисляет решение о доступе на момент now.
func (s *Service) Check(ctx context.Context, userUID string, now time.Time) (*models.User, models.AccessDecision, error) {
	user, err := s.repo.GetUser(ctx, userUID)
	if err != nil {
		return nil, models.AccessDecision{}, err
	}
	return user, Evaluate(user, now), nil
}

// Grant активирует подписку пользователя: subscription_active = true,
// subscription_expiry = now + SubscriptionTerm, с перезаписью прежнего
// значения. Вызывается только после успешной верификации платежа.
func (s *Service) Grant(ctx context.Context, userUID string, now time.Time) (*models.User, error) {
	expiry := now.Add(SubscriptionTerm)
	user, err := s.repo.ActivateSubscription(ctx, userUID, expiry)
	if err != nil {
		return nil, err
	}
	s.log.Info("subscription activated",
		slog.String("user_uid", user.UID),
		slog.Time("expiry", expiry))
	return user, nil
}
