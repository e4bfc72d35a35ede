package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sirupsen/logrus"

	"travel/internal/handler"
	"travel/internal/middleware"
	"travel/internal/redis"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	CatalogHandler   *handler.CatalogHandler
	TripHandler      *handler.TripHandler
	LegalHandler     *handler.LegalHandler
	ContactHandler   *handler.ContactHandler
	AuthHandler      *handler.AuthHandler
	AnalyticsHandler *handler.AnalyticsHandler
	UploadHandler    *handler.UploadHandler
	SiteHandler      *handler.SiteHandler
	Sessions         middleware.SessionResolver
	Idempotency      redis.IdempotencyStoreInterface
	Database         Pinger
	Logger           logrus.FieldLogger
	NewRelicApp      *newrelic.Application
	AllowedOrigins   []string
	MaxUploadMB      int64
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	if deps.MaxUploadMB > 0 {
		router.MaxMultipartMemory = deps.MaxUploadMB << 20
	}

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger))
	corsConfig := cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "Idempotent-Replayed"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	router.Use(cors.New(corsConfig))

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
		router.Use(middleware.NewRelicAttributes())
	}

	idempotent := middleware.IdempotencyMiddleware(deps.Idempotency, deps.Logger)

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		if deps.Database != nil {
			if err := deps.Database.PingContext(c.Request.Context()); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "unreachable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		v1.GET("/site", deps.SiteHandler.GetSite)

		// Catalog routes.
		trips := v1.Group("/trips")
		{
			trips.GET("", deps.CatalogHandler.GetCatalog)
			trips.GET("/:id", deps.CatalogHandler.GetTrip)
			trips.GET("/:id/booking", deps.CatalogHandler.GetBooking)
		}

		// Legal routes.
		legal := v1.Group("/legal")
		{
			legal.GET("", deps.LegalHandler.GetAll)
			legal.GET("/:id", deps.LegalHandler.GetPage)
		}

		// Contact routes.
		contact := v1.Group("/contact")
		{
			contact.POST("", idempotent, deps.ContactHandler.Submit)
			contact.GET("/whatsapp", deps.CatalogHandler.GetCustomizeLink)
		}

		v1.POST("/visits", deps.AnalyticsHandler.RecordVisit)
		v1.POST("/auth/login", deps.AuthHandler.Login)

		// Admin routes.
		admin := v1.Group("/admin", middleware.RequireAdmin(deps.Sessions))
		{
			admin.GET("/me", deps.AuthHandler.Me)
			admin.POST("/logout", deps.AuthHandler.Logout)
			admin.GET("/analytics", deps.AnalyticsHandler.GetSummary)
			admin.GET("/locations", deps.TripHandler.SuggestLocations)
			admin.POST("/uploads", deps.UploadHandler.Upload)

			adminTrips := admin.Group("/trips")
			{
				adminTrips.GET("", deps.TripHandler.GetAll)
				adminTrips.POST("", idempotent, deps.TripHandler.CreateTrip)
				adminTrips.PUT("/:id", deps.TripHandler.UpdateTrip)
				adminTrips.DELETE("/:id", deps.TripHandler.DeleteTrip)
			}

			adminLegal := admin.Group("/legal")
			{
				adminLegal.POST("", idempotent, deps.LegalHandler.CreatePage)
				adminLegal.PUT("/:id", deps.LegalHandler.UpdatePage)
				adminLegal.DELETE("/:id", deps.LegalHandler.DeletePage)
			}

			contacts := admin.Group("/contacts")
			{
				contacts.GET("", deps.ContactHandler.GetInbox)
				contacts.GET("/stream", deps.ContactHandler.StreamInbox)
				contacts.POST("/:id/read", deps.ContactHandler.MarkRead)
				contacts.DELETE("/:id", deps.ContactHandler.DeleteSubmission)
			}
		}
	}

	return router
}
