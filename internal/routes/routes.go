package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/barber-dashboard/internal/audit"
	domain "github.com/BruksfildServices01/barber-dashboard/internal/domain/booking"
	"github.com/BruksfildServices01/barber-dashboard/internal/domain/shop"
	"github.com/BruksfildServices01/barber-dashboard/internal/handlers"
	"github.com/BruksfildServices01/barber-dashboard/internal/metrics"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	"github.com/BruksfildServices01/barber-dashboard/internal/session"
	ucBooking "github.com/BruksfildServices01/barber-dashboard/internal/usecase/booking"
)

// Deps is everything the HTTP layer needs, built once in main.
type Deps struct {
	Accounts shop.AccountRepository
	Barbers  shop.BarberRepository
	Services shop.ServiceRepository
	Bookings domain.Repository

	Sessions *session.Manager
	Registry *ucBooking.Registry

	Audit     *audit.Dispatcher
	AuditLogs handlers.AuditLister

	// nil when image storage is not configured
	Images handlers.ImageUploader

	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	MetricsPath  string
	LoginLimiter *middleware.RateLimiter
	CORSOrigins  []string
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.CORSOrigins))
	if d.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.Metrics))
	}

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Accounts, d.Sessions, d.Registry, d.Audit)
	meHandler := handlers.NewMeHandler(d.Accounts)
	barbershopHandler := handlers.NewBarbershopHandler(d.Accounts)

	barberHandler := handlers.NewBarberHandler(d.Barbers, d.Audit)
	serviceHandler := handlers.NewServiceHandler(d.Services, d.Images, d.Audit)
	bookingHandler := handlers.NewBookingHandler(d.Registry)

	publicHandler := handlers.NewPublicHandler(d.Accounts, d.Barbers, d.Services, d.Bookings, d.Audit)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs)

	// ======================================================
	// OPERATIONS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if d.Gatherer != nil {
		r.GET(d.MetricsPath, gin.WrapH(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/barbers", publicHandler.ListBarbers)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		authAPI := api.Group("/auth")
		if d.LoginLimiter != nil {
			authAPI.Use(middleware.RateLimit(d.LoginLimiter))
		}
		{
			authAPI.POST("/register", authHandler.Register)
			authAPI.POST("/login", authHandler.Login)
		}

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Sessions))
		{
			secured.POST("/auth/logout", authHandler.Logout)

			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			secured.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			secured.GET("/me/barbers", barberHandler.List)
			secured.POST("/me/barbers", barberHandler.Create)
			secured.PATCH("/me/barbers/:id/availability", barberHandler.SetAvailability)
			secured.DELETE("/me/barbers/:id", barberHandler.Delete)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)
			secured.POST("/me/services/:id/image", serviceHandler.UploadImage)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/me/bookings", bookingHandler.List)
			secured.POST("/me/bookings/refresh", bookingHandler.Refresh)
			secured.GET("/me/bookings/today", bookingHandler.Today)
			secured.POST("/me/bookings/:id/accept", bookingHandler.Accept)
			secured.POST("/me/bookings/:id/cancel", bookingHandler.Cancel)
			secured.POST("/me/bookings/:id/intent", bookingHandler.RequestIntent)

			secured.GET("/me/booking-intent", bookingHandler.GetIntent)
			secured.POST("/me/booking-intent/confirm", bookingHandler.ConfirmIntent)
			secured.DELETE("/me/booking-intent", bookingHandler.DismissIntent)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
