package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/modutour/backend/internal/api"
	"github.com/modutour/backend/internal/crawler"
	"github.com/modutour/backend/internal/db"
	"github.com/modutour/backend/internal/middleware"
	"github.com/modutour/backend/internal/scheduler"
)

// Config holds application configuration
type Config struct {
	Port            string
	Debug           bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// NewConfig creates a new configuration from environment variables
func NewConfig() *Config {
	port := cleanEnv("PORT")
	if port == "" {
		port = "5001"
	}

	return &Config{
		Port:            port,
		Debug:           strings.EqualFold(cleanEnv("APP_DEBUG"), "true"),
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 30 * time.Second,
	}
}

// cleanEnv trims whitespace and strips backslashes from an environment
// variable before use.
func cleanEnv(key string) string {
	return strings.ReplaceAll(strings.TrimSpace(os.Getenv(key)), `\`, "")
}

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment")
	}

	config := NewConfig()

	// Initialize database; a connection failure degrades the API to
	// canned payloads instead of aborting startup.
	log.Println("Initializing database...")
	var dbConn *gorm.DB
	dbConn, err := db.InitDB(db.NewConfig())
	if err != nil {
		log.Printf("Failed to initialize database, running in degraded mode: %v", err)
		dbConn = nil
	} else {
		log.Println("Database initialized successfully")
	}

	// Initialize crawler service (simulation mode when dbConn is nil)
	crawlerService := crawler.NewService(dbConn, nil)

	deps := &api.Deps{
		DB:                dbConn,
		Crawler:           crawlerService,
		DatabaseAvailable: dbConn != nil,
		CrawlerAvailable:  true,
	}

	// Initialize Gin router
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Add middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS())

	api.RegisterRoutes(r, deps)

	// Start the daily crawl scheduler
	crawlScheduler := scheduler.New(dbConn, crawlerService)
	if err := crawlScheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      r,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on port %s", config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Create shutdown context
	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	// Shutdown server gracefully
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Stop the scheduler, waiting for a running crawl to finish
	crawlScheduler.Stop()

	log.Println("Server exited")
}
