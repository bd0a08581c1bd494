package main

import (
	"context"
	"healthsync-service/internal/app/config"
	"healthsync-service/internal/app/delivery/http/controllers"
	"healthsync-service/internal/app/delivery/http/middlewares"
	"healthsync-service/internal/app/delivery/http/routers"
	"healthsync-service/internal/app/drivers/database"
	"healthsync-service/internal/app/drivers/logger"
	"healthsync-service/internal/app/drivers/messaging"
	"healthsync-service/internal/app/drivers/storage"
	"healthsync-service/internal/app/services/core/appointments"
	"healthsync-service/internal/app/services/core/articles"
	"healthsync-service/internal/app/services/core/auth"
	"healthsync-service/internal/app/services/core/carts"
	"healthsync-service/internal/app/services/core/dashboard"
	"healthsync-service/internal/app/services/core/doctors"
	"healthsync-service/internal/app/services/core/labresults"
	"healthsync-service/internal/app/services/core/labtests"
	"healthsync-service/internal/app/services/core/medicines"
	"healthsync-service/internal/app/services/core/orders"
	"healthsync-service/internal/app/services/core/prescriptions"
	"healthsync-service/internal/app/services/core/session"
	"healthsync-service/internal/app/services/core/slots"
	"healthsync-service/internal/app/services/core/users"
	"healthsync-service/internal/app/services/shared/mailer"
	"healthsync-service/internal/app/services/shared/redis"
	sharedStorage "healthsync-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()
	logrus.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, location *time.Location) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)
	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQMailerQueue)
	if err != nil {
		logrus.Fatalf("Failed to initialize mailer service: %v", err)
	}

	sessionService := session.NewSessionService(redisRepository)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Repositories
	dbName := bootstrap.DriverConfig.MongoDB.DbName
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, dbName)
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, dbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, dbName)
	cartMongoRepository := carts.NewCartMongoRepository(bootstrap.MongoDB, dbName)
	orderMongoRepository := orders.NewOrderMongoRepository(bootstrap.MongoDB, dbName)
	medicineMongoRepository := medicines.NewMedicineMongoRepository(bootstrap.MongoDB, dbName)
	labTestMongoRepository := labtests.NewLabTestMongoRepository(bootstrap.MongoDB, dbName)
	healthArticleMongoRepository := articles.NewHealthArticleMongoRepository(bootstrap.MongoDB, dbName)
	prescriptionMongoRepository := prescriptions.NewPrescriptionMongoRepository(bootstrap.MongoDB, dbName)
	labResultMongoRepository := labresults.NewLabResultMongoRepository(bootstrap.MongoDB, dbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(
		userMongoRepository,
		doctorMongoRepository,
		sessionService,
		redisRepository,
		mailerService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// User
	userUsecase := users.NewUserUsecase(
		userMongoRepository,
		doctorMongoRepository,
		appointmentMongoRepository,
		sessionService,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.DriverConfig,
		bootstrap.Logger,
	)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)

	// Doctor and slots
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, bootstrap.Logger)
	slotUsecase := slots.NewSlotUsecase(doctorMongoRepository, location, bootstrap.Logger)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, slotUsecase)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		doctorMongoRepository,
		userMongoRepository,
		sessionService,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Cart and orders
	cartUsecase := carts.NewCartUsecase(cartMongoRepository, orderMongoRepository, sessionService, bootstrap.Logger)
	cartController := controllers.NewCartController(bootstrap.Logger, cartUsecase)

	orderUsecase := orders.NewOrderUsecase(orderMongoRepository, sessionService, bootstrap.Logger)
	orderController := controllers.NewOrderController(bootstrap.Logger, orderUsecase)

	// Catalog
	medicineUsecase := medicines.NewMedicineUsecase(medicineMongoRepository, bootstrap.Logger)
	labTestUsecase := labtests.NewLabTestUsecase(labTestMongoRepository, bootstrap.Logger)
	healthArticleUsecase := articles.NewHealthArticleUsecase(healthArticleMongoRepository, bootstrap.Logger)
	catalogController := controllers.NewCatalogController(bootstrap.Logger, medicineUsecase, labTestUsecase, healthArticleUsecase)

	// Prescriptions and lab results
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(
		prescriptionMongoRepository,
		userMongoRepository,
		sessionService,
		bootstrap.Logger,
	)
	prescriptionController := controllers.NewPrescriptionController(bootstrap.Logger, prescriptionUsecase)

	labResultUsecase := labresults.NewLabResultUsecase(labResultMongoRepository, sessionService, bootstrap.Logger)
	labResultController := controllers.NewLabResultController(bootstrap.Logger, labResultUsecase)

	// Dashboard
	dashboardUsecase := dashboard.NewDashboardUsecase(appointmentMongoRepository, sessionService, location, bootstrap.Logger)
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, dashboardUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		doctorController,
		appointmentController,
		cartController,
		orderController,
		catalogController,
		prescriptionController,
		labResultController,
		dashboardController,
	)
}
