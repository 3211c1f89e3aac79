// File: studiobook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studiobook/config"
	"studiobook/cron"
	"studiobook/database"
	bookingRepoPkg "studiobook/database/repository/booking"
	studioRepoPkg "studiobook/database/repository/studio"
	"studiobook/handlers"
	"studiobook/middleware"
	"studiobook/routes"
	"studiobook/services/booking"
	"studiobook/services/notification"
	"studiobook/services/payment"
	"studiobook/services/studio"
	"studiobook/services/tasks"
	"studiobook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	studioRepo := studioRepoPkg.NewMongoStudioRepo()

	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := studioRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure studio indexes: %v", err)
	}

	// services.
	oracle := &booking.StorageAvailabilityOracle{
		StudioRepo:  studioRepo,
		BookingRepo: bookingRepo,
	}

	checkout := &payment.PayHereCheckout{
		MerchantID:     config.AppConfig.PayHereMerchantID,
		MerchantSecret: config.AppConfig.PayHereMerchantSecret,
		Currency:       config.AppConfig.PayHereCurrency,
	}

	wizardService := &booking.DefaultBookingWizardService{
		StudioRepo:  studioRepo,
		BookingRepo: bookingRepo,
		Oracle:      oracle,
		Checkout:    checkout,
		Sessions:    booking.NewRedisSessionStore(),
	}

	studioService := &studio.DefaultStudioService{
		Repo: studioRepo,
	}

	dispatcher := tasks.NewDispatcher()
	defer dispatcher.Close()

	webhookService := &payment.DefaultWebhookService{
		BookingRepo:    bookingRepo,
		StudioRepo:     studioRepo,
		Enqueuer:       dispatcher,
		MerchantID:     config.AppConfig.PayHereMerchantID,
		MerchantSecret: config.AppConfig.PayHereMerchantSecret,
	}

	notificationService, err := notification.NewDefaultNotificationService(
		notification.NewGatewaySMSSender(),
		notification.NewSendGridEmailSender(),
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}
	cron.InitNoticeWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking: &handlers.BookingHandler{
			Wizard:   wizardService,
			Oracle:   oracle,
			Bookings: bookingRepo,
		},
		Webhook: &handlers.WebhookHandler{
			Service: webhookService,
		},
		Studio: &handlers.StudioHandler{
			Service: studioService,
		},
		Calendar: &handlers.CalendarHandler{
			Bookings: bookingRepo,
			Studios:  studioRepo,
		},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetSessionCacheClient(), database.MongoClient)

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
