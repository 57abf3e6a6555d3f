package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servicerequest-service/internal/app/config"
	"servicerequest-service/internal/app/contracts"
	"servicerequest-service/internal/app/delivery/http/controllers"
	"servicerequest-service/internal/app/delivery/http/middlewares"
	"servicerequest-service/internal/app/delivery/http/routers"
	"servicerequest-service/internal/app/drivers/database"
	"servicerequest-service/internal/app/drivers/logger"
	"servicerequest-service/internal/app/services/core/service_requests"
	"servicerequest-service/internal/app/services/shared/fhirschema"
	"servicerequest-service/internal/app/services/shared/redis"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		log.Fatalf("Error loading driver config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	if internalConfig.App.Timezone != "" {
		location, err := time.LoadLocation(internalConfig.App.Timezone)
		if err != nil {
			zapLogger.Fatal("Error loading location", zap.Error(err))
		}
		time.Local = location
	}

	ctx := context.Background()

	mongoDB, err := database.NewMongoDB(ctx, driverConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("Error connecting to mongo database", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(ctx, driverConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("Error connecting to redis", zap.Error(err))
	}

	chiRouter := chi.NewRouter()
	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(ctx, bootstrap, mongoDB)
	if err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.ServerAddress(),
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap, mongoDB *database.MongoHandle) error {
	// Schema validator
	schemaValidator, err := fhirschema.NewFHIRValidator(bootstrap.InternalConfig, bootstrap.Logger)
	if err != nil {
		return err
	}

	// Service requests
	serviceRequestRepository := service_requests.NewServiceRequestMongoRepository(mongoDB, bootstrap.Logger)
	err = serviceRequestRepository.EnsureIndexes(ctx)
	if err != nil {
		return err
	}

	var cacheHealthChecker contracts.HealthChecker
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		serviceRequestRepository = service_requests.NewServiceRequestCachedRepository(
			serviceRequestRepository,
			redisRepository,
			time.Duration(bootstrap.DriverConfig.Redis.CacheTTLInMinutes)*time.Minute,
			bootstrap.Logger,
		)
		cacheHealthChecker = redisRepository
	}

	serviceRequestUsecase := service_requests.NewServiceRequestUsecase(serviceRequestRepository, schemaValidator, bootstrap.Logger)
	serviceRequestController := controllers.NewServiceRequestController(bootstrap.Logger, serviceRequestUsecase)

	// Health
	healthController := controllers.NewHealthController(bootstrap.Logger, mongoDB, cacheHealthChecker)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		serviceRequestController,
		healthController,
	)
	return nil
}
