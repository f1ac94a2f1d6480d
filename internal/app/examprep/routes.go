// Package examprep предоставляет маршруты для основного приложения.
package examprep

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/examprep/examprep-api/internal/http/handlers/auth/login"
	"github.com/examprep/examprep-api/internal/http/handlers/auth/register"
	"github.com/examprep/examprep-api/internal/http/handlers/catalog/add"
	"github.com/examprep/examprep-api/internal/http/handlers/catalog/list"
	"github.com/examprep/examprep-api/internal/http/handlers/catalog/remove"
	"github.com/examprep/examprep-api/internal/http/handlers/catalog/subject"
	"github.com/examprep/examprep-api/internal/http/handlers/catalog/update"
	"github.com/examprep/examprep-api/internal/http/handlers/health"
	"github.com/examprep/examprep-api/internal/http/handlers/payment/createorder"
	"github.com/examprep/examprep-api/internal/http/handlers/payment/history"
	"github.com/examprep/examprep-api/internal/http/handlers/payment/verify"
	"github.com/examprep/examprep-api/internal/http/middlewarectx"
	"github.com/examprep/examprep-api/internal/paymentprovider"
	authservice "github.com/examprep/examprep-api/internal/services/auth"
	catalogservice "github.com/examprep/examprep-api/internal/services/catalog"
	entitlementservice "github.com/examprep/examprep-api/internal/services/entitlement"
	paymentservice "github.com/examprep/examprep-api/internal/services/payment"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService,
	entitlementService *entitlementservice.Service,
	catalogService *catalogservice.Service,
	paymentService *paymentservice.Service,
	providerClient *paymentprovider.Client,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", register.New(logger, authService).ServeHTTP)
			r.Post("/login", login.New(logger, authService).ServeHTTP)
		})

		// Каталог вопросов: JWT для всех операций
		r.Route("/questions", func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))

			// Чтение закрыто проверкой пробного периода и подписки
			// и ограничением частоты запросов
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.EntitlementMiddleware(logger, entitlementService))
				r.Use(middlewarectx.RateLimitMiddleware(logger))
				r.Get("/{subject}", subject.New(logger).ServeHTTP)
				r.Get("/{subject}/{chapter}/questions", list.New(logger, catalogService).ServeHTTP)
			})

			// Изменение каталога доступно только администраторам,
			// без проверки пробного периода
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminMiddleware(logger))
				r.Post("/{subject}/{chapter}/add-question", add.New(logger, catalogService).ServeHTTP)
				r.Put("/{subject}/{chapter}/{id}/update-question", update.New(logger, catalogService).ServeHTTP)
				r.Delete("/{subject}/{chapter}/{id}/delete-question", remove.New(logger, catalogService).ServeHTTP)
			})
		})

		r.Route("/payment", func(r chi.Router) {
			r.Post("/create-order", createorder.New(logger, providerClient).ServeHTTP)
			r.Post("/verify-payment", verify.New(logger, paymentService).ServeHTTP)

			// Журнал платежей текущего пользователя
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.JWTMiddleware(authService, logger))
				r.Get("/history", history.New(logger, paymentService).ServeHTTP)
			})
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
