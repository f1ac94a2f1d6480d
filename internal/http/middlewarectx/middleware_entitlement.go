package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/examprep/examprep-api/internal/http/response"
	"github.com/examprep/examprep-api/internal/lib/sl"
	"github.com/examprep/examprep-api/internal/models"
	"github.com/examprep/examprep-api/internal/storage/repository"
)

const (
	// Decision — ключ для решения о доступе в контексте запроса.
	Decision Key = "access_decision"
	// CurrentUser — ключ для записи пользователя, загруженной при проверке доступа.
	CurrentUser Key = "current_user"
)

// EntitlementService вычисляет решение о доступе для пользователя.
type EntitlementService interface {
	Check(ctx context.Context, userUID string, now time.Time) (*models.User, models.AccessDecision, error)
}

// EntitlementMiddleware создает middleware, проверяющий доступ к каталогу
// по пробному периоду и подписке. При отказе возвращает 403 с предложением
// оформить подписку; решение о доступе кладётся в контекст для обработчиков.
func EntitlementMiddleware(log *slog.Logger, entitlements EntitlementService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userUID, ok := r.Context().Value(UserUID).(string)
			if !ok || userUID == "" {
				log.Error("user identification missing")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}

			user, decision, err := entitlements.Check(r.Context(), userUID, time.Now())
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					log.Error("user not found", slog.String("user_uid", userUID))
					render.Status(r, http.StatusNotFound)
					render.JSON(w, r, response.Error("user not found"))
					return
				}
				log.Error("failed to check entitlement", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}

			if !decision.Granted {
				log.Info("trial expired, access denied", slog.String("user_uid", user.UID))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("trial expired, please subscribe to continue"))
				return
			}

			ctx := context.WithValue(r.Context(), Decision, decision)
			ctx = context.WithValue(ctx, CurrentUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DecisionFromContext возвращает решение о доступе, положенное
// EntitlementMiddleware в контекст запроса.
func DecisionFromContext(ctx context.Context) (models.AccessDecision, bool) {
	d, ok := ctx.Value(Decision).(models.AccessDecision)
	return d, ok
}

// UserFromContext возвращает пользователя, загруженного EntitlementMiddleware
// при проверке доступа.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(CurrentUser).(*models.User)
	return u, ok
}
