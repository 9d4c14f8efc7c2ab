package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"
	config "github.com/screenline/console-api/configs"
	"github.com/screenline/console-api/internal/api/handlers"
	"github.com/screenline/console-api/internal/api/middleware"
	job "github.com/screenline/console-api/internal/jobs"
	"github.com/screenline/console-api/internal/queue"
	"github.com/screenline/console-api/internal/remote"
	"github.com/screenline/console-api/internal/repository"
	"github.com/screenline/console-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    100 * 1024 * 1024, // 100 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	attemptRepo := repository.NewAttemptRepository(db)
	archiveRepo := repository.NewUploadArchiveRepository(db)

	credStore := remote.NewCredentialStore(cfg.SecretKey, cfg.SessionTTL)
	remoteClient := remote.NewClient(cfg.APIOrigin, credStore, cfg.RemoteTimeout)

	payloadArchive := service.NewR2Archive(*cfg)
	authService := service.NewAuthService(*cfg, remoteClient, credStore)
	mediaService := service.NewMediaService(remoteClient, attemptRepo, archiveRepo, payloadArchive)
	groupService := service.NewGroupService(remoteClient)
	deviceService := service.NewDeviceService(remoteClient)

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Post("/login", auth.Login)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	api.Post("/logout", auth.Logout)

	media := handlers.NewMediaHandler(mediaService, client, int(cfg.ProbeInterval/time.Second))
	api.Get("/media", media.ListMedia)
	api.Post("/media", media.CreateMedia)
	api.Post("/media/upload", media.UploadMedia)
	api.Patch("/media/:id", media.UpdateMedia)
	api.Delete("/media/:id", media.DeleteMedia)
	api.Post("/media/:id/retry", media.RetryMedia)

	group := handlers.NewGroupHandler(groupService)
	api.Get("/group", group.ListGroups)
	api.Post("/group", group.CreateGroup)
	api.Patch("/group/:id", group.UpdateGroup)
	api.Delete("/group/:id", group.DeleteGroup)

	device := handlers.NewDeviceHandler(deviceService)
	api.Get("/device", device.ListDevices)
	api.Post("/device", device.CreateDevice)
	api.Patch("/device/:id", device.UpdateDevice)
	api.Delete("/device/:id", device.DeleteDevice)

	dashboard := handlers.NewDashboardHandler(deviceService, groupService, mediaService)
	api.Get("/dashboard", dashboard.GetStats)

	// cron jobs
	maintenanceJob := job.NewMaintenanceJob(credStore, attemptRepo, cfg.AttemptMaxAge)

	// queue
	queueW := queue.NewQueue(mediaService, attemptRepo, client, int(cfg.ProbeInterval/time.Second), cfg.ProbeMaxChecks)

	c := cron.New()
	c.AddFunc("@every 00h10m00s", maintenanceJob.SweepSessions)
	c.AddFunc("@daily", maintenanceJob.PruneAttempts)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypeStatusProbe, queueW.HandleStatusProbeTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on %s", cfg.ListenAddr)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
