package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/fekuna/crpm-service/config"
	"github.com/fekuna/crpm-service/internal/app"
	"github.com/fekuna/crpm-service/internal/pkg/logger"
)

func main() {
	// 1. Load Configuration
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	appLogger := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "dev",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Connect to Database and wire components
	application, err := app.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Could not initialize application", zap.Error(err))
	}
	defer application.Close()

	// 4. Serve HTTP, gRPC and the order listener until a signal arrives
	if err := application.Run(ctx, app.Options{HTTP: true, Kafka: true}); err != nil {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	appLogger.Info("Server stopped")
}
