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

// gRPC-only deployment: no HTTP listener.
func main() {
	// 1. Load Config
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	log := logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.Server.AppEnv == "dev",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
		Level:             cfg.Logger.Level,
		Encoding:          cfg.Logger.Encoding,
	})
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Database and components
	application, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("Could not initialize application", zap.Error(err))
	}
	defer application.Close()

	// 4. Serve
	if err := application.Run(ctx, app.Options{Kafka: true}); err != nil {
		log.Error("gRPC server stopped with error", zap.Error(err))
	}
}
