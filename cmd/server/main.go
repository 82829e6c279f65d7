package main

import (
	"context"   // Context for shutdown and Redis operations
	"errors"    // Error inspection
	"net/http"  // HTTP server
	"os"        // Signals
	"os/signal" // Signal notification
	"syscall"   // SIGTERM
	"time"      // Shutdown timeout

	"movie_reviews/internal/api"        // Custom package for API handlers
	"movie_reviews/internal/config"     // Custom package for configuration
	"movie_reviews/internal/db"         // Custom package for the store
	"movie_reviews/internal/events"     // Custom package for domain events
	"movie_reviews/internal/middleware" // Custom package for middleware
	"movie_reviews/internal/repository" // Custom package for store operations
	"movie_reviews/internal/utils"      // Custom package for cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	setupLogger(cfg)

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET must be set") // Tokens cannot be signed without a key
	}

	// Connect to the database
	store, err := db.Connect(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	defer func() { _ = db.Close(store) }()
	if cfg.AutoMigrate {
		if err := db.Migrate(store); err != nil {
			logrus.Fatalf("migration failed: %v", err)
		}
		if err := repository.NewRoleRepo(store).Ensure(context.Background(), cfg.SeedRoles...); err != nil {
			logrus.Fatalf("seeding roles failed: %v", err)
		}
	}

	// Setup Redis client, caching is skipped when no address is configured
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		defer func() { _ = redisClient.Close() }()
	}

	// Setup event publisher, events are dropped when no broker is configured
	var publisher events.Publisher = events.Noop{}
	if cfg.AMQPURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			logrus.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		publisher = amqpPublisher
	}
	defer func() { _ = publisher.Close() }()

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.New()                                                     // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger()) // Recovery, tracing and access log

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	api.RegisterRoutes(r, api.Deps{
		Users:     repository.NewUserRepo(store, cfg.BcryptCost), // User store
		Genres:    repository.NewGenreRepo(store),                // Genre store
		Movies:    repository.NewMovieRepo(store),                // Movie store
		Reviews:   repository.NewReviewRepo(store),               // Review store
		Cache:     utils.NewCache(redisClient, cfg.CacheTTL),     // List cache
		Events:    publisher,                                     // Event sink
		JWTSecret: cfg.JWTSecret,                                 // Token signing key
		JWTTTL:    cfg.JWTTTL,                                    // Token lifetime
	})

	srv := &http.Server{Addr: ":" + cfg.AppPort, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logrus.Info("Server running on " + cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	// Wait for an interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}
}

// setupLogger configures the global logrus logger from cfg
func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine-readable logs in production
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
