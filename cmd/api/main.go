package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/token-service/internal/api/http"
	"github.com/spec-kit/token-service/internal/api/http/handlers"
	"github.com/spec-kit/token-service/internal/auth"
	"github.com/spec-kit/token-service/internal/config"
	"github.com/spec-kit/token-service/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Debug("starting", zap.String("log_level", cfg.Logger.Level), zap.String("env", cfg.App.Env))

	issuer, err := auth.NewIssuer(cfg.Auth)
	if err != nil {
		logger.Fatal("failed to init token issuer", zap.Error(err))
	}
	guard, err := auth.NewGuard(cfg.Auth)
	if err != nil {
		logger.Fatal("failed to init token guard", zap.Error(err))
	}

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(),
		Tokens: handlers.NewTokenHandler(issuer, logger),
		Guard:  guard,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("version", cfg.App.Version))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := shutdown(app, cfg.App.ShutdownTimeout()); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
	snap := metrics.Snapshot()
	logger.Info("stopped", zap.Any("requests", snap.Requests), zap.Any("errors", snap.Errors))
}

func shutdown(app *fiber.App, timeout time.Duration) error {
	if timeout <= 0 {
		return app.Shutdown()
	}
	return app.ShutdownWithTimeout(timeout)
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
