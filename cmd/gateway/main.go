package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shareit/internal/gateway"
	"shareit/pkg/config"
	"shareit/pkg/logger"

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

	zap.L().Info("shareit gateway starting...",
		zap.String("serverURL", appConfig.ServerURL),
		zap.Int("rateLimit", appConfig.GatewayRateLimit),
	)

	app := gateway.NewApp(gateway.Config{
		ServerURL: appConfig.ServerURL,
		RateLimit: appConfig.GatewayRateLimit,
	})

	go func() {
		if err := app.Listen(fmt.Sprintf("0.0.0.0:%s", appConfig.GatewayPort)); err != nil {
			zap.L().Error("Failed to start gateway", zap.Error(err))
			os.Exit(1)
		}
	}()

	zap.L().Info("Gateway started on port", zap.String("port", appConfig.GatewayPort))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	zap.L().Info("Shutting down gateway...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zap.L().Error("Error during gateway shutdown", zap.Error(err))
	}
	zap.L().Info("Gateway gracefully stopped")
}
