package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"luxurystay-backend/config"
	"luxurystay-backend/controllers"
	"luxurystay-backend/jobs"
	"luxurystay-backend/routes"
	"luxurystay-backend/services"
	"luxurystay-backend/utils"
)

func envMinutes(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		log.Printf("⚠️  Invalid %s=%q, using default %d", key, raw, def)
		return def
	}
	return n
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Token signing secret is required; refuse to start without it.
	if os.Getenv("SECRET_KEY_ACCESS_TOKEN") == "" {
		log.Fatal("❌ ERROR: SECRET_KEY_ACCESS_TOKEN environment variable is not set. Cannot sign access tokens.")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Redis session cache is optional: without it every /me hits the DB.
	var sessionCache services.SessionCache
	if rdb, err := config.ConnectRedis(context.Background()); err != nil {
		log.Printf("⚠️  Redis unavailable, session caching disabled: %v", err)
	} else {
		sessionCache = services.NewRedisSessionCache(rdb)
	}

	holdTTL := time.Duration(envMinutes("HOLD_TTL_MINUTES", 30)) * time.Minute
	sweepMinutes := envMinutes("HOLD_SWEEP_MINUTES", 5)
	sessionTTL := time.Duration(envMinutes("SESSION_CACHE_TTL_MINUTES", 60*24)) * time.Minute

	// Stores and services
	roomStore := services.NewGormRoomStore(db)
	reservationStore := services.NewGormReservationStore(db)
	userStore := services.NewGormUserStore(db)

	roomService := services.NewRoomService(roomStore)
	reservationService := services.NewReservationService(
		roomStore, reservationStore, holdTTL,
		services.WithMailer(utils.NewReservationEmailSender()),
	)
	authService := services.NewAuthService(userStore, sessionCache, sessionTTL)
	userService := services.NewUserService(userStore, sessionCache)

	// Controllers
	authController := controllers.NewAuthController(authService)
	roomController := controllers.NewRoomController(roomService)
	reservationController := controllers.NewReservationController(reservationService)
	userController := controllers.NewUserController(userService)

	// Hold sweep
	cronRunner := cron.New()
	if err := jobs.InitCronJobs(cronRunner, reservationService, sweepMinutes); err != nil {
		log.Fatalf("❌ Failed to schedule hold sweep: %v", err)
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	// Build router
	router := routes.SetupRouter(authController, roomController, reservationController, userController)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
