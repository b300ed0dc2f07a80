package main

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clippercuts/booking-api/internal/cache"
	"github.com/clippercuts/booking-api/internal/config"
	dbpkg "github.com/clippercuts/booking-api/internal/db"
	infraRepo "github.com/clippercuts/booking-api/internal/infra/repository"
	"github.com/clippercuts/booking-api/internal/logging"
	"github.com/clippercuts/booking-api/internal/metrics"
	"github.com/clippercuts/booking-api/internal/middleware"
	"github.com/clippercuts/booking-api/internal/notify"
	"github.com/clippercuts/booking-api/internal/routes"
)

func main() {

	cfg := config.Load()
	logger := logging.New(cfg)

	metrics.Register()

	db := dbpkg.NewDB(cfg)
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// Redis is optional; without it availability is computed on every request.
	var availabilityCache *cache.AvailabilityCache
	if cfg.RedisAddr != "" {
		client := cache.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
		availabilityCache = cache.NewAvailabilityCache(client, 30*time.Second)
		logger.Info().Str("addr", cfg.RedisAddr).Msg("availability cache enabled")
	} else {
		availabilityCache = cache.NewAvailabilityCache(nil, 0)
	}

	var sender notify.Sender
	if cfg.SMTPHost != "" && cfg.SMTPUser != "" {
		sender = notify.NewSMTPSender(cfg)
		logger.Info().Str("host", cfg.SMTPHost).Msg("smtp sender enabled")
	} else {
		sender = notify.NewLogSender(logger)
		logger.Warn().Msg("smtp not configured, confirmation emails go to the log")
	}

	dispatcher := notify.NewDispatcher(sender, bookingRepo, logger)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, db, cfg, availabilityCache, dispatcher)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")
	err := srv.ListenAndServe()

	// Drain queued confirmations before the process goes away. Fatal would
	// os.Exit past this, so the error is handled after the drain.
	dispatcher.Close()

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
