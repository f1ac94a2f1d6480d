// Package auth содержит логику бизнес-уровня для регистрации, входа
// и валидации JWT токенов пользователей.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/examprep/examprep-api/internal/lib/jwt"
	"github.com/examprep/examprep-api/internal/lib/password"
	"github.com/examprep/examprep-api/internal/models"
	"github.com/examprep/examprep-api/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при неверной паре email/пароль.
// Неизвестный email и неверный пароль неразличимы для вызывающего.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)
	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// SetTrialStart проставляет начало пробного периода, если оно не установлено.
	SetTrialStart(ctx context.Context, userUID string, start time.Time) error
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// Пробный период стартует в момент регистрации.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (string, *models.User, error) {
	const op = "auth.Register"

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	trialStart := time.Now().UTC()
	user := models.User{
		Name:           name,
		Email:          email,
		PasswordHash:   hashed,
		TrialStartTime: &trialStart,
	}
	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	user.UID = uid

	token, err := s.jwtMaker.GenerateToken(user.UID, user.Role())
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, &user, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
// Если пробный период ещё не стартовал, его начало проставляется
// временем первого входа.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	const op = "auth.Login"

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if user.TrialStartTime == nil {
		trialStart := time.Now().UTC()
		if err := s.users.SetTrialStart(ctx, user.UID, trialStart); err != nil {
			return "", nil, fmt.Errorf("%s: %w", op, err)
		}
		user.TrialStartTime = &trialStart
	}

	token, err := s.jwtMaker.GenerateToken(user.UID, user.Role())
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, nil
}

// ValidateToken проверяет JWT и возвращает claims с идентификатором и ролью.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
