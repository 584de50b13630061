package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"uesvalle-service/internal/app/config"
	"uesvalle-service/internal/app/contracts"
	"uesvalle-service/internal/app/delivery/http/controllers"
	"uesvalle-service/internal/app/delivery/http/middlewares"
	"uesvalle-service/internal/app/delivery/http/routers"
	"uesvalle-service/internal/app/drivers/database"
	"uesvalle-service/internal/app/drivers/logger"
	"uesvalle-service/internal/app/drivers/messaging"
	"uesvalle-service/internal/app/drivers/storage"
	"uesvalle-service/internal/app/models"
	"uesvalle-service/internal/app/services/core/dashboard"
	"uesvalle-service/internal/app/services/core/entities"
	"uesvalle-service/internal/app/services/core/exports"
	"uesvalle-service/internal/app/services/core/providers"
	"uesvalle-service/internal/app/services/shared/locker"
	"uesvalle-service/internal/app/services/shared/notifier"
	"uesvalle-service/internal/app/services/shared/redis"
	sharedStorage "uesvalle-service/internal/app/services/shared/storage"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	log.Info("Starting uesvalle-service",
		zap.String("version", Version),
		zap.String("tag", Tag),
	)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Gorm:           database.NewGormDB(postgresDB, internalConfig),
		Redis:          database.NewRedisClient(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Minio:          storage.NewMinio(driverConfig, internalConfig),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error releasing resources", zap.Error(err))
	}

	fmt.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	cacheTTL := time.Duration(bootstrap.InternalConfig.Cache.ListTTLInSeconds) * time.Second

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)

	var notifierService contracts.Notifier
	if bootstrap.RabbitMQ != nil {
		channel, err := notifier.DeclareNotificationQueue(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.NotificationQueue)
		if err != nil {
			return err
		}
		notifierService = notifier.NewRabbitMQNotifier(channel, bootstrap.InternalConfig.RabbitMQ.NotificationQueue, log)
	} else {
		notifierService = notifier.NewLogNotifier(log)
	}

	var storageService contracts.Storage
	if bootstrap.Minio != nil {
		storageService = sharedStorage.NewMinioStorage(bootstrap.Minio)
	}

	// Entities
	providerRepository := entities.NewEntityPostgresRepository[models.Provider](bootstrap.Gorm, log, entities.ProviderDefinition)
	entityControllers := &routers.EntityControllers{
		Provider: controllers.NewEntityController(log, bootstrap.InternalConfig,
			entities.NewEntityUsecase(entities.ProviderDefinition, providerRepository, redisRepository, notifierService, cacheTTL, log)),
		Laboratory: controllers.NewEntityController(log, bootstrap.InternalConfig,
			newEntityUsecase[models.Laboratory](bootstrap.Gorm, entities.LaboratoryDefinition, redisRepository, notifierService, cacheTTL, log)),
		Technician: controllers.NewEntityController(log, bootstrap.InternalConfig,
			newEntityUsecase[models.Technician](bootstrap.Gorm, entities.TechnicianDefinition, redisRepository, notifierService, cacheTTL, log)),
		SampleRequest: controllers.NewEntityController(log, bootstrap.InternalConfig,
			newEntityUsecase[models.SampleRequest](bootstrap.Gorm, entities.SampleRequestDefinition, redisRepository, notifierService, cacheTTL, log)),
		Requester: controllers.NewEntityController(log, bootstrap.InternalConfig,
			newEntityUsecase[models.Requester](bootstrap.Gorm, entities.RequesterDefinition, redisRepository, notifierService, cacheTTL, log)),
		Report: controllers.NewEntityController(log, bootstrap.InternalConfig,
			newEntityUsecase[models.Report](bootstrap.Gorm, entities.ReportDefinition, redisRepository, notifierService, cacheTTL, log)),
		Location: controllers.NewEntityController(log, bootstrap.InternalConfig,
			newEntityUsecase[models.Location](bootstrap.Gorm, entities.LocationDefinition, redisRepository, notifierService, cacheTTL, log)),
		Representative: controllers.NewEntityController(log, bootstrap.InternalConfig,
			newEntityUsecase[models.Representative](bootstrap.Gorm, entities.RepresentativeDefinition, redisRepository, notifierService, cacheTTL, log)),
	}

	// Dashboard
	dashboardRepository := dashboard.NewDashboardPostgresRepository(bootstrap.Gorm, log)
	dashboardUsecase := dashboard.NewDashboardUsecase(dashboardRepository, log)
	dashboardController := controllers.NewDashboardController(log, bootstrap.InternalConfig, dashboardUsecase)

	// Export
	exportRepository := exports.NewExportPostgresRepository(bootstrap.Gorm, log)
	exportUsecase := exports.NewExportUsecase(exportRepository, storageService, bootstrap.InternalConfig, log)
	exportController := controllers.NewExportController(log, bootstrap.InternalConfig, exportUsecase)

	if bootstrap.InternalConfig.Export.ArchiveCronSpec != "" && storageService != nil {
		worker := exports.NewWorker(log, bootstrap.InternalConfig, lockerService, exportUsecase)
		err := worker.Start(context.Background())
		if err != nil {
			return err
		}
		bootstrap.WorkerStop = worker.Stop
	}

	// Provider detail
	providerDetailRepository := providers.NewProviderDetailPostgresRepository(bootstrap.Gorm, log, providerRepository)
	providerDetailUsecase := providers.NewProviderDetailUsecase(providerDetailRepository, log)
	providerDetailController := controllers.NewProviderDetailController(log, bootstrap.InternalConfig, providerDetailUsecase)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		entityControllers,
		dashboardController,
		exportController,
		providerDetailController,
	)
	return nil
}

func newEntityUsecase[T any](
	db *gorm.DB,
	definition *models.EntityDefinition,
	redisRepository contracts.RedisRepository,
	notifierService contracts.Notifier,
	cacheTTL time.Duration,
	log *zap.Logger,
) contracts.EntityUsecase[T] {
	repository := entities.NewEntityPostgresRepository[T](db, log, definition)
	return entities.NewEntityUsecase(definition, repository, redisRepository, notifierService, cacheTTL, log)
}
