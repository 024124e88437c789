package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LeleooAlves/personal-plan-creator/internal/api"
	"github.com/LeleooAlves/personal-plan-creator/internal/config"
	"github.com/LeleooAlves/personal-plan-creator/internal/document"
	"github.com/LeleooAlves/personal-plan-creator/internal/export"
	"github.com/LeleooAlves/personal-plan-creator/internal/service"
	"github.com/LeleooAlves/personal-plan-creator/internal/store/file"
)

func main() {
	log.Println("Starting Personal Plan Creator...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if cfg.Auth.PasswordHash == "" {
		log.Fatal("FATAL: auth.password_hash is not configured")
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("FATAL: jwt.secret is not configured")
	}
	log.Println("Configuration loaded.")

	// --- Initialize Stores ---
	// Each store is one JSON blob under the data directory, created empty
	// on first run.
	log.Printf("Initializing stores in %s...", cfg.Data.Dir)
	catalogStore, err := file.NewCatalogStore(cfg.Data.Dir, cfg.Data.MaxBlobBytes)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize exercise catalog: %v", err)
	}
	workoutStore, err := file.NewWorkoutStore(cfg.Data.Dir, cfg.Data.MaxBlobBytes)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize workout store: %v", err)
	}
	profileStore, err := file.NewProfileStore(cfg.Data.Dir, cfg.Data.MaxBlobBytes)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize profile store: %v", err)
	}

	// --- Document pipeline ---
	generator := document.NewGenerator(nil) // default HTML theme
	exporter := export.NewDayExporter(generator, cfg.Export.Dir)
	sharer := export.NewShareLinker(cfg.Server.BaseURL)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(cfg.Auth.PasswordHash, cfg.JWT.Secret, cfg.JWT.Expiration)
	catalogService := service.NewCatalogService(catalogStore)
	workoutService := service.NewWorkoutService(workoutStore, catalogStore, profileStore, generator, exporter, sharer)
	profileService := service.NewProfileService(profileStore)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, catalogService, workoutService, profileService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
