package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowdesk/config"
	"glowdesk/cron"
	"glowdesk/database"
	apptRepoPkg "glowdesk/database/repository/appointment"
	businessRepoPkg "glowdesk/database/repository/business"
	catalogRepoPkg "glowdesk/database/repository/catalog"
	staffRepoPkg "glowdesk/database/repository/staff"
	"glowdesk/handlers"
	"glowdesk/middleware"
	"glowdesk/routes"
	"glowdesk/services/booking"
	"glowdesk/services/business"
	"glowdesk/services/catalog"
	"glowdesk/services/staff"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitLockClient()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := apptRepoPkg.NewMongoAppointmentRepo()
	staffRepo := staffRepoPkg.NewMongoStaffRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	businessRepo := businessRepoPkg.NewMongoBusinessRepo()

	for name, repo := range map[string]interface{ EnsureIndexes() error }{
		"appointments": apptRepo,
		"staff":        staffRepo,
		"catalog":      catalogRepo,
		"businesses":   businessRepo,
	} {
		if err := repo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	businessService := &business.DefaultBusinessService{
		Repo: businessRepo,
	}
	staffService := &staff.DefaultStaffService{
		Repo: staffRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Repo: catalogRepo,
	}
	bookingService := &booking.DefaultBookingService{
		ApptRepo:     apptRepo,
		StaffRepo:    staffRepo,
		CatalogRepo:  catalogRepo,
		BusinessRepo: businessRepo,
		Reminders:    booking.NewAsynqReminderScheduler(),
		Lock:         utils.GetLockClient(),
		SlotInterval: config.AppConfig.SlotIntervalMinutes,
		LockTTL:      time.Duration(config.AppConfig.BookingLockSeconds) * time.Second,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Business: handlers.NewBusinessHandler(businessService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Staff:    handlers.NewStaffHandler(staffService),
		Catalog:  handlers.NewCatalogHandler(catalogService),
	}

	routes.RegisterRoutes(router, handlerBundle)

	cron.InitReminderWorker(apptRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
