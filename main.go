package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberbook/config"
	"barberbook/cron"
	"barberbook/database"
	appointmentRepoPkg "barberbook/database/repository/appointment"
	locationRepoPkg "barberbook/database/repository/location"
	profileRepoPkg "barberbook/database/repository/profile"
	serviceRepoPkg "barberbook/database/repository/service"
	"barberbook/handlers"
	"barberbook/middleware"
	"barberbook/routes"
	"barberbook/services/agenda"
	"barberbook/services/bookingflow"
	"barberbook/services/catalog"
	"barberbook/services/directory"
	"barberbook/services/notification"
	"barberbook/services/payment"
	"barberbook/services/storage"
	"barberbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cloudinaryStorage, err := storage.NewCloudinaryStorage(config.AppConfig.CloudinaryURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	// repositories.
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	locationRepo := locationRepoPkg.NewMongoLocationRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	// services.
	directoryService := &directory.DefaultDirectoryService{
		Profiles:     profileRepo,
		Appointments: appointmentRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		Locations: locationRepo,
		Services:  serviceRepo,
	}
	agendaService := &agenda.DefaultAgendaService{
		Appointments: appointmentRepo,
	}

	reminderQueue := cron.NewReminderQueue()
	notificationService := &notification.DefaultNotificationService{
		Profiles: profileRepo,
		Services: serviceRepo,
		Email: notification.NewSMTPSender(
			config.AppConfig.SMTPHost,
			config.AppConfig.SMTPPort,
			config.AppConfig.SMTPFrom,
		),
		Push:      &notification.FCMSender{Client: utils.FCMClient},
		Reminders: reminderQueue,
		Logger:    logger,
	}
	cron.InitReminderWorker(notificationService)

	sessionTTL := time.Duration(config.AppConfig.BookingSessionTTLMin) * time.Minute
	flowEngine := &bookingflow.Engine{
		Locations:      locationRepo,
		Profiles:       profileRepo,
		Services:       serviceRepo,
		Appointments:   appointmentRepo,
		Intents:        payment.NewStripeIntentIssuer(config.AppConfig.StripeSecretKey, logger),
		Store:          bookingflow.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL),
		Notifier:       notificationService,
		PublishableKey: config.AppConfig.StripePublishableKey,
		Logger:         logger,
	}

	reconciler := &payment.Reconciler{
		Appointments: appointmentRepo,
		Logger:       logger,
	}

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		&handlers.BookingHandler{Flow: flowEngine},
		&handlers.DirectoryHandler{Dir: directoryService},
		&handlers.CatalogHandler{Catalog: catalogService},
		&handlers.AgendaHandler{Agenda: agendaService},
		&handlers.PaymentHandler{
			Reconciler:     reconciler,
			WebhookSecret:  config.AppConfig.StripeWebhookSecret,
			PublishableKey: config.AppConfig.StripePublishableKey,
		},
		&handlers.StorageHandler{StorageSvc: cloudinaryStorage},
	)

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	if err := catalogService.Seed(); err != nil {
		logger.Sugar().Warnf("main: catalog seed failed: %v", err)
	}

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
