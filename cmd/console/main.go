package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/rental-console/internal/api/http"
	"github.com/spec-kit/rental-console/internal/api/http/handlers"
	"github.com/spec-kit/rental-console/internal/apiclient"
	"github.com/spec-kit/rental-console/internal/auth"
	"github.com/spec-kit/rental-console/internal/config"
	"github.com/spec-kit/rental-console/internal/events"
	"github.com/spec-kit/rental-console/internal/gateway"
	"github.com/spec-kit/rental-console/internal/notify"
	"github.com/spec-kit/rental-console/internal/observability"
	"github.com/spec-kit/rental-console/internal/persistence"
	"github.com/spec-kit/rental-console/internal/service"
	"github.com/spec-kit/rental-console/internal/session"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage, closeStorage, err := persistence.Open(*cfg, logger)
	if err != nil {
		logger.Fatal("failed to open session storage", zap.Error(err))
	}
	defer closeStorage()

	dispatcher := events.NewInMemoryDispatcher()
	inbox := notify.NewInbox(cfg.Notification.InboxSize)
	service.NewNotificationService(dispatcher, inbox, logger).RegisterHandlers()

	store := session.NewStore(ctx, storage,
		session.WithLogger(logger),
		session.WithPublisher(dispatcher),
		session.WithAdminUserType(cfg.Auth.AdminUserType),
	)

	upstreamMetrics := observability.NewMetrics()
	consoleMetrics := observability.NewMetrics()

	client := apiclient.NewClient(cfg.API.BaseURL, store,
		apiclient.WithTimeout(cfg.API.Timeout()),
		apiclient.WithPublisher(dispatcher),
		apiclient.WithMetrics(upstreamMetrics),
		apiclient.WithLogger(logger),
	)

	gateways := handlers.Gateways{
		Portal:    gateway.NewPortalGateway(client),
		Cars:      gateway.NewCarGateway(client),
		Brands:    gateway.NewBrandGateway(client),
		Types:     gateway.NewTypeGateway(client),
		Cities:    gateway.NewCityGateway(client),
		Orders:    gateway.NewRentalOrderGateway(client),
		News:      gateway.NewNewsGateway(client),
		Dashboard: gateway.NewDashboardGateway(client),
		Community: gateway.NewCommunityGateway(client),
		System:    gateway.NewSystemGateway(client),
	}

	authService := service.NewAuthService(service.AuthDependencies{
		Gateway: gateway.NewAuthGateway(client),
		Session: store,
		Logger:  logger,
	})
	guard := auth.NewGuard(store, cfg.Auth.LoginPath, cfg.Auth.HomePath)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, consoleMetrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, storage, upstreamMetrics, consoleMetrics),
		Session:       handlers.NewSessionHandler(authService),
		Notifications: handlers.NewNotificationsHandler(inbox),
		Pages:         handlers.NewPagesHandler(gateways, authService, store, cfg.API.FileBaseURL),
		Actions:       handlers.NewActionsHandler(gateways, cfg.API.FileBaseURL),
		Guard:         guard,
		Permissions:   store,
	})

	logger.Info("console starting",
		zap.String("addr", cfg.App.Addr()),
		zap.String("api", client.BaseURL()),
		zap.Bool("authenticated", store.IsAuthenticated()))

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
