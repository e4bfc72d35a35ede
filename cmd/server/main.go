package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"travel/internal/app"
	"travel/internal/auth"
	"travel/internal/config"
	"travel/internal/domain"
	"travel/internal/geocode"
	"travel/internal/handler"
	"travel/internal/imagehost"
	internalRedis "travel/internal/redis"
	"travel/internal/repository/documents"
	"travel/internal/repository/postgres"
	"travel/internal/service"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			logger.WithError(err).Warn("failed to initialize New Relic")
		} else {
			logger.WithField("app", cfg.NewRelic.AppName).Info("New Relic enabled (with DB instrumentation)")
		}
	}

	// Initialize database and apply migrations.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()
	logger.Info("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to redis")
	}
	defer redisClient.Close()
	logger.Info("Connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg, logger)

	// Start server in goroutine.
	go func() {
		logger.WithField("port", cfg.Server.Port).Info("Starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server error")
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
	}
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}

	logger.Info("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sqlx.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config, logger *logrus.Logger) *http.Server {
	// Initialize Redis stores.
	cacheStore := internalRedis.NewCacheStore(redisClient)
	changeFeed := internalRedis.NewChangeFeed(redisClient)
	revocationStore := internalRedis.NewRevocationStore(redisClient)
	idempotencyStore := internalRedis.NewIdempotencyStore(redisClient)

	// Initialize repositories.
	store := postgres.NewDocumentStore(db, changeFeed, logger)
	tripRepo := documents.NewTripRepository(store, logger)
	legalRepo := documents.NewLegalPageRepository(store, logger)
	contactRepo := documents.NewContactRepository(store, logger)
	visitorRepo := documents.NewVisitorRepository(store, logger)
	adminRepo := documents.NewAdminRepository(store)

	// Initialize outbound clients.
	imageHost := imagehost.NewClient(imagehost.Config{
		URL:     cfg.Upload.URL,
		APIKey:  cfg.Upload.APIKey,
		Timeout: cfg.Upload.Timeout,
	})
	geocoder := geocode.NewClient(cfg.Geocode.URL, cfg.Geocode.UserAgent)

	// Initialize services.
	composer := domain.NewComposer(cfg.Site.MessageVariant, domain.Branding{
		Agency:   cfg.Site.AgencyName,
		Currency: cfg.Site.Currency,
	})
	notificationService := service.NewNotificationService(logger)
	catalogService := service.NewCatalogService(tripRepo, cacheStore, logger)
	bookingService := service.NewBookingService(tripRepo, composer, cfg.Site.AgencyName, cfg.Site.WhatsAppNumber)
	tripService := service.NewTripService(tripRepo, cacheStore, notificationService, logger)
	legalService := service.NewLegalService(legalRepo)
	contactService := service.NewContactService(contactRepo, notificationService)
	authService := service.NewAuthService(adminRepo, auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.SessionExpiry), revocationStore, logger)
	analyticsService := service.NewAnalyticsService(visitorRepo, tripRepo, contactRepo)
	uploadService := service.NewUploadService(imageHost, logger)
	locationService := service.NewLocationService(geocoder, logger)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		CatalogHandler:   handler.NewCatalogHandler(catalogService, bookingService),
		TripHandler:      handler.NewTripHandler(tripService, locationService),
		LegalHandler:     handler.NewLegalHandler(legalService),
		ContactHandler:   handler.NewContactHandler(contactService),
		AuthHandler:      handler.NewAuthHandler(authService),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService),
		UploadHandler:    handler.NewUploadHandler(uploadService),
		SiteHandler: handler.NewSiteHandler(handler.SiteInfo{
			Agency:         cfg.Site.AgencyName,
			Currency:       cfg.Site.Currency,
			WhatsAppNumber: cfg.Site.WhatsAppNumber,
			PhoneNumber:    cfg.Site.PhoneNumber,
		}),
		Sessions:       authService,
		Idempotency:    idempotencyStore,
		Database:       db,
		Logger:         logger,
		NewRelicApp:    nrApp,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		MaxUploadMB:    cfg.Server.MaxUploadMB,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
