package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"salon-service/internal/app/config"
	"salon-service/internal/app/delivery/http/controllers"
	"salon-service/internal/app/delivery/http/middlewares"
	"salon-service/internal/app/delivery/http/routers"
	"salon-service/internal/app/drivers/database"
	"salon-service/internal/app/drivers/logger"
	"salon-service/internal/app/drivers/messaging"
	"salon-service/internal/app/drivers/storage"
	"salon-service/internal/app/models"
	"salon-service/internal/app/services/analytics"
	"salon-service/internal/app/services/auth"
	"salon-service/internal/app/services/bookings"
	"salon-service/internal/app/services/catalog"
	"salon-service/internal/app/services/photos"
	"salon-service/internal/app/services/shared/bookingqueue"
	redisrepo "salon-service/internal/app/services/shared/redis"
	"salon-service/internal/app/services/shared/salonapi"
	miniostorage "salon-service/internal/app/services/shared/storage"
	"salon-service/internal/app/services/users"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logrusLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrusLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitConn,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrusLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrusLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrusLog.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrusLog.Fatalf("Error while closing application resources: %v", err)
	}

	logrusLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	// Shared infrastructure
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	minioStorage := miniostorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)

	queueService, err := bookingqueue.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Events.MaxQueue)
	if err != nil {
		log.Fatalf("Error setting up booking event queues: %v", err)
	}
	worker := bookingqueue.NewWorker(bootstrap.Logger, bootstrap.InternalConfig, queueService)
	bootstrap.WorkerStop = worker.Start(context.Background())

	salonClient := salonapi.NewClient(bootstrap.InternalConfig, bootstrap.Logger)

	// Photo
	photoUsecase := photos.NewPhotoUsecase(minioStorage, bootstrap.InternalConfig, bootstrap.Logger)
	photoController := controllers.NewPhotoController(bootstrap.Logger, photoUsecase, bootstrap.InternalConfig)

	// Auth
	authSalonClient := auth.NewAuthSalonClient(salonClient, bootstrap.Logger)
	authUsecase := auth.NewAuthUsecase(authSalonClient, redisRepository, photoUsecase, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Refreshed upstream credentials must survive the request that earned
	// them, so persist the rotated session back to redis.
	salonClient.SetSessionRefreshHook(func(ctx context.Context, sessionData *models.Session) {
		if err := authUsecase.SaveSession(ctx, sessionData); err != nil {
			bootstrap.Logger.Error("failed to persist refreshed session",
				zap.String("session_id", sessionData.SessionID),
				zap.Error(err),
			)
		}
	})

	// Booking
	bookingSalonClient := bookings.NewBookingSalonClient(salonClient, bootstrap.Logger)
	bookingUsecase := bookings.NewBookingUsecase(bookingSalonClient, redisRepository, queueService, bootstrap.InternalConfig, bootstrap.Logger)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)

	// User
	userSalonClient := users.NewUserSalonClient(salonClient, bootstrap.Logger)
	userUsecase := users.NewUserUsecase(userSalonClient, photoUsecase, queueService, bootstrap.InternalConfig, bootstrap.Logger)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)

	// Catalog
	catalogSalonClient := catalog.NewCatalogSalonClient(salonClient, bootstrap.Logger)
	catalogUsecase := catalog.NewCatalogUsecase(catalogSalonClient, photoUsecase, bootstrap.InternalConfig, bootstrap.Logger)
	catalogController := controllers.NewCatalogController(bootstrap.Logger, catalogUsecase)

	// Analytics
	analyticsSalonClient := analytics.NewAnalyticsSalonClient(salonClient, bootstrap.Logger)
	analyticsUsecase := analytics.NewAnalyticsUsecase(analyticsSalonClient, bootstrap.Logger)
	analyticsController := controllers.NewAnalyticsController(bootstrap.Logger, analyticsUsecase)

	// Middlewares
	httpMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		httpMiddlewares,
		authController,
		bookingController,
		userController,
		catalogController,
		analyticsController,
		photoController,
	)
}
