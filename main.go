package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusminds/config"
	"campusminds/cron"
	"campusminds/database"
	appointmentRepo "campusminds/database/repository/appointment"
	counselorRepo "campusminds/database/repository/counselor"
	studentRepo "campusminds/database/repository/student"
	urgentRepo "campusminds/database/repository/urgent"
	"campusminds/handlers"
	"campusminds/middleware"
	"campusminds/routes"
	"campusminds/services/assistant"
	"campusminds/services/booking"
	"campusminds/services/counselor"
	"campusminds/services/student"
	"campusminds/services/urgent"
	"campusminds/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	cnslrRepo := counselorRepo.NewMongoCounselorRepo()
	stdntRepo := studentRepo.NewMongoStudentRepo()
	urgRepo := urgentRepo.NewMongoUrgentRepo()

	// services.
	reminderScheduler := cron.NewReminderScheduler()
	bookingService := &booking.DefaultBookingService{
		Repo:      apptRepo,
		Students:  stdntRepo,
		Catalog:   booking.NewSlotCatalog(config.AppConfig.BookingSlots),
		Reminders: reminderScheduler,
	}
	counselorService := counselor.NewDefaultCounselorService(
		cnslrRepo,
		utils.GetAuthCacheClient(),
		utils.GetCacheClient(),
		config.AppConfig.CounselorAccessCode,
	)
	studentService := &student.DefaultStudentService{
		Repo:      stdntRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}
	urgentService := &urgent.DefaultUrgentService{
		Repo:     urgRepo,
		Students: stdntRepo,
		Booking:  bookingService,
	}
	assistantService := &assistant.DefaultAssistantService{
		Client:     assistant.NewGeminiClient(config.AppConfig.GeminiAPIKey),
		CrisisLine: config.AppConfig.CrisisLine,
	}

	// Assemble the handler bundle.
	bookingHandler := handlers.NewBookingHandler(bookingService)
	handlerBundle := &handlers.HandlerBundle{
		AuthCache: utils.GetAuthCacheClient(),
		Booking:   bookingHandler,
		Dashboard: handlers.NewDashboardHandler(bookingService, urgentService),
		Counselor: handlers.NewCounselorHandler(counselorService),
		Student:   handlers.NewStudentHandler(studentService),
		Urgent:    handlers.NewUrgentHandler(urgentService, counselorService),
		Assistant: handlers.NewAssistantHandler(assistantService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker()
	cron.MonitorRedisConnection()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()},
		database.MongoClient,
	)

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
