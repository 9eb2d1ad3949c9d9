package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	httptransport "github.com/notifyhq/notify-admin/internal/api/http"
	"github.com/notifyhq/notify-admin/internal/api/http/handlers"
	"github.com/notifyhq/notify-admin/internal/auth"
	"github.com/notifyhq/notify-admin/internal/config"
	"github.com/notifyhq/notify-admin/internal/deskpro"
	"github.com/notifyhq/notify-admin/internal/notifyapi"
	"github.com/notifyhq/notify-admin/internal/observability"
	"github.com/notifyhq/notify-admin/internal/persistence"
	"github.com/notifyhq/notify-admin/internal/session"
	"github.com/notifyhq/notify-admin/internal/support"
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

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)

	hours, err := support.LoadBusinessHours(cfg.Support.HoursFile)
	if err != nil {
		logger.Fatal("failed to load support hours", zap.Error(err))
	}
	policy := support.NewPolicy(hours)

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	messageStore := session.NewRedisMessageStore(
		redis.Client,
		time.Duration(cfg.Session.FeedbackTTLMinutes)*time.Minute,
	)

	apiClient := notifyapi.NewClient(cfg.API)
	deskproClient := deskpro.NewClient(cfg.Deskpro, logger)

	tokens := auth.NewTokenManager(cfg.Session.JWTSecret, cfg.Session.TTLMinutes)
	authMiddleware := auth.NewMiddleware(tokens, cfg.Session.CookieName)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	app.Use(session.Middleware())
	app.Use(authMiddleware.Handle)

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, redis)
	supportHandler := handlers.NewSupportHandler(handlers.SupportDependencies{
		Policy:   policy,
		Services: apiClient,
		Messages: messageStore,
		Tickets:  deskproClient,
		Metrics:  metrics,
		Logger:   logger,
		BaseURL:  cfg.App.BaseURL,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  healthHandler,
		Support: supportHandler,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
