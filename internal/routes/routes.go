package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clippercuts/booking-api/internal/cache"
	"github.com/clippercuts/booking-api/internal/config"
	"github.com/clippercuts/booking-api/internal/handlers"
	infraRepo "github.com/clippercuts/booking-api/internal/infra/repository"
	"github.com/clippercuts/booking-api/internal/middleware"
	"github.com/clippercuts/booking-api/internal/notify"
	ucBooking "github.com/clippercuts/booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	availabilityCache *cache.AvailabilityCache,
	dispatcher *notify.Dispatcher,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, availabilityCache)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		availabilityCache,
		dispatcher,
		cfg,
	)

	updateStatusUC := ucBooking.NewUpdateBookingStatus(
		bookingRepo,
		availabilityCache,
		cfg,
	)

	listBookingsUC := ucBooking.NewListBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		availabilityUC,
		createBookingUC,
		cfg.ShopTimezone,
	)

	bookingHandler := handlers.NewBookingHandler(listBookingsUC, updateStatusUC)
	barberHandler := handlers.NewBarberHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	specialDateHandler := handlers.NewSpecialDateHandler(db)
	testimonialHandler := handlers.NewTestimonialHandler(db)

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
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/testimonials", publicHandler.ListTestimonials)
			publicAPI.GET("/availability", publicHandler.Availability)

			// Anonymous writes get rate limited per client IP.
			writes := publicAPI.Group("/")
			writes.Use(limiter.Middleware())
			{
				writes.POST("/bookings", publicHandler.CreateBooking)
				writes.POST("/testimonials", publicHandler.CreateTestimonial)
			}
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/me", middleware.AuthMiddleware(cfg), meHandler.GetMe)

		// ------------------------------
		// ADMIN
		// ------------------------------
		secured := api.Group("/admin")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/bookings", bookingHandler.ListByDate)
			secured.GET("/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

			secured.GET("/barbers", barberHandler.List)
			secured.POST("/barbers", barberHandler.Create)
			secured.PATCH("/barbers/:id", barberHandler.Update)
			secured.DELETE("/barbers/:id", barberHandler.Delete)
			secured.GET("/barbers/:id/schedule", barberHandler.GetSchedule)
			secured.PUT("/barbers/:id/schedule", barberHandler.UpdateSchedule)

			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.GET("/special-dates", specialDateHandler.List)
			secured.POST("/special-dates", specialDateHandler.Create)
			secured.DELETE("/special-dates/:id", specialDateHandler.Delete)

			secured.GET("/testimonials", testimonialHandler.List)
			secured.PATCH("/testimonials/:id", testimonialHandler.Update)
			secured.DELETE("/testimonials/:id", testimonialHandler.Delete)
		}
	}
}
