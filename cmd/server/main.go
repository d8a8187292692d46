package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/greenloop/ewastedb/internal/config"
	"github.com/greenloop/ewastedb/internal/database"
	"github.com/greenloop/ewastedb/internal/handlers"
	"github.com/greenloop/ewastedb/internal/middleware"
	"github.com/greenloop/ewastedb/internal/services"
	"github.com/greenloop/ewastedb/internal/types"
	"github.com/greenloop/ewastedb/internal/utils"

	_ "github.com/greenloop/ewastedb/docs/api" // Swagger docs
)

// @title ewastedb API
// @version 1.0.0
// @description Data service for the e-waste recycling SPA: devices, pickups, donations, activity feed and impact stats
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/greenloop/ewastedb

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Optional Redis-backed session cache
	sessionCache := services.NewSessionCache(cfg.RedisAddr, cfg.RedisPassword, cfg.SessionCacheTTL)
	if sessionCache != nil {
		defer sessionCache.Close()
		log.Printf("Session cache enabled: %s", cfg.RedisAddr)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("ewastedb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Every route is per-user; all sit behind the Authorizer session check
	api.Use(middleware.AuthUser(cfg, sessionCache))

	deviceHandler := &handlers.DeviceHandler{DB: db}
	pickupHandler := &handlers.PickupHandler{DB: db}
	donationHandler := &handlers.DonationHandler{DB: db}
	activityHandler := &handlers.ActivityHandler{DB: db}
	impactHandler := &handlers.ImpactHandler{DB: db}
	profileHandler := &handlers.ProfileHandler{DB: db}
	eventHandler := &handlers.EventHandler{DB: db}

	// Device registry
	api.Get("/devices", deviceHandler.ListDevices)
	api.Get("/devices/available", deviceHandler.ListAvailableDevices)
	api.Post("/devices", deviceHandler.AddDevice)
	api.Delete("/devices/:id", deviceHandler.DeleteDevice)

	// Pickup scheduler
	api.Get("/pickups", pickupHandler.ListPickups)
	api.Post("/pickups", pickupHandler.SchedulePickup)
	api.Post("/pickups/:id/complete", pickupHandler.CompletePickup)
	api.Post("/pickups/:id/cancel", pickupHandler.CancelPickup)

	// Donation recorder
	api.Get("/donations", donationHandler.ListDonations)
	api.Post("/donations", donationHandler.DonateDevice)

	// Activity feed and impact snapshot
	api.Get("/activities", activityHandler.RecentActivities)
	api.Get("/impact", impactHandler.GetImpact)

	// Profile and community events
	api.Get("/profile", profileHandler.GetProfile)
	api.Put("/profile", profileHandler.UpsertProfile)
	api.Get("/events", eventHandler.ListEventSignups)
	api.Post("/events", eventHandler.JoinEvent)
	api.Delete("/events/:id", eventHandler.LeaveEvent)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a Fiber error
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	// Domain errors carry their own status mapping
	var de *types.DomainError
	if errors.As(err, &de) {
		return utils.DomainErrorResponse(c, de)
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
