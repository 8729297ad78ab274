package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shareit/infra/memory"
	"shareit/infra/postgres"
	"shareit/infra/rabbitmq"
	"shareit/internal/router"
	"shareit/pkg/config"
	"shareit/pkg/events"
	"shareit/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	appConfig := config.Read()

	log, err := logger.Init(appConfig.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.L().Info("shareit server starting...",
		zap.String("storage", appConfig.Storage),
		zap.String("port", appConfig.Port),
	)

	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()

	checks := map[string]router.HealthCheck{}

	repository, err := openRepository(appConfig, checks, &closers)
	if err != nil {
		zap.L().Fatal("Failed to open storage", zap.Error(err))
	}

	var publisher events.Publisher
	if appConfig.RabbitMQURL != "" {
		rabbit, err := rabbitmq.NewRabbitMQPublisher(
			appConfig.RabbitMQURL,
			appConfig.ServiceName,
			events.ItemExchange,
			events.BookingExchange,
			events.RequestExchange,
		)
		if err != nil {
			zap.L().Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		closers = append(closers, rabbit)
		publisher = rabbit
		checks["rabbitmq"] = func(context.Context) (map[string]any, error) {
			if !rabbit.IsHealthy() {
				return nil, errors.New("connection closed")
			}
			return nil, nil
		}
	} else {
		zap.L().Info("RABBITMQ_URL is empty, domain events are disabled")
	}

	app := router.NewApp(router.Config{
		Repository:   repository,
		Publisher:    publisher,
		HealthChecks: checks,
	})

	go func() {
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", appConfig.Port)); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", appConfig.Port))

	gracefulShutdown(app)
}

func openRepository(appConfig *config.AppConfig, checks map[string]router.HealthCheck, closers *[]io.Closer) (router.Repository, error) {
	if appConfig.Storage == config.StorageMemory {
		zap.L().Warn("Using in-memory storage, data is lost on restart")
		return memory.NewStore(), nil
	}

	pgRepository, err := postgres.NewPgRepository(postgres.Options{
		Host:     appConfig.PostgresHost,
		Port:     appConfig.PostgresPort,
		User:     appConfig.PostgresUsername,
		Password: appConfig.PostgresPassword,
		Database: appConfig.PostgresDatabase,
		SSLMode:  appConfig.PostgresSSLMode,
	})
	if err != nil {
		return nil, err
	}
	*closers = append(*closers, pgRepository)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := pgRepository.Migrate(ctx); err != nil {
		return nil, err
	}

	checks["postgres"] = func(ctx context.Context) (map[string]any, error) {
		return pgRepository.GetPoolStats(), pgRepository.Ping(ctx)
	}
	return pgRepository, nil
}

func gracefulShutdown(app *fiber.App) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	zap.L().Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Error("Error during server shutdown", zap.Error(err))
	}

	zap.L().Info("Server gracefully stopped")
}
