// Package examprep собирает приложение: хранилище, миграции, кеш,
// брокер сообщений, клиент платёжного провайдера, сервисы и HTTP-сервер.
package examprep

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/examprep/examprep-api/internal/cache"
	"github.com/examprep/examprep-api/internal/config"
	"github.com/examprep/examprep-api/internal/lib/jwt"
	"github.com/examprep/examprep-api/internal/lib/sl"
	"github.com/examprep/examprep-api/internal/migrations"
	"github.com/examprep/examprep-api/internal/paymentprovider"
	"github.com/examprep/examprep-api/internal/rabbitmq"
	authservice "github.com/examprep/examprep-api/internal/services/auth"
	catalogservice "github.com/examprep/examprep-api/internal/services/catalog"
	entitlementservice "github.com/examprep/examprep-api/internal/services/entitlement"
	paymentservice "github.com/examprep/examprep-api/internal/services/payment"
	"github.com/examprep/examprep-api/internal/storage/repository"
)

type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *repository.Storage
	amqpConn *amqp.Connection
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	var notifier paymentservice.Notifier
	var amqpConn *amqp.Connection
	if cfg.RabbitMQURL != "" {
		amqpConn, err = rabbitmq.Connect(cfg.RabbitMQURL, 5, 2*time.Second)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(amqpConn, []rabbitmq.QueueConfig{
			{QueueName: "subscription-activations", RoutingKey: "subscription.activated"},
		})
		if err != nil {
			return nil, err
		}
		notifier = rabbitmq.NewPublisher(ch)
	} else {
		logger.Warn("rabbitmq url is not set, activation events will not be published")
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	providerClient := paymentprovider.NewClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	authService := authservice.NewAuthService(db, jwtMaker)
	entitlementService := entitlementservice.New(db, logger)
	catalogService := catalogservice.New(db, cacheRedis, logger)
	paymentService := paymentservice.New(cfg.Razorpay.KeySecret, entitlementService, db, notifier, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authService, entitlementService, catalogService, paymentService, providerClient)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		amqpConn: amqpConn,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if a.amqpConn != nil {
			if closeErr := a.amqpConn.Close(); closeErr != nil {
				a.logger.Error("failed to close rabbitmq connection", sl.Err(closeErr))
			}
		}
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database connection", sl.Err(closeErr))
		}
		return err
	}
}
