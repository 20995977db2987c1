package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/localprint/api/internal/config"
	"github.com/localprint/api/internal/database"
	"github.com/localprint/api/internal/handler"
	"github.com/localprint/api/internal/middleware"
	"github.com/localprint/api/internal/repository"
	"github.com/localprint/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	providerRepo := repository.NewProviderRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	printRequestRepo := repository.NewPrintRequestRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	providerService := service.NewProviderService(service.ProviderServiceConfig{
		Repo: providerRepo,
	})
	reviewService := service.NewReviewService(service.ReviewServiceConfig{
		ReviewRepo:   reviewRepo,
		ProviderRepo: providerRepo,
	})
	printRequestService := service.NewPrintRequestService(service.PrintRequestServiceConfig{
		RequestRepo:  printRequestRepo,
		ProviderRepo: providerRepo,
	})
	userService := service.NewUserService(service.UserServiceConfig{
		Repo: userRepo,
	})

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	providerHandler := handler.NewProviderHandler(providerService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	printRequestHandler := handler.NewPrintRequestHandler(printRequestService)
	userHandler := handler.NewUserHandler(userService)

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   cfg.RateLimit.Rate,
		Window: cfg.RateLimit.Window,
		Burst:  cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Register routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.HandleFunc("POST /api/providers", providerHandler.CreateProvider)
	mux.HandleFunc("GET /api/providers", providerHandler.ListProviders)

	mux.HandleFunc("POST /api/reviews", reviewHandler.CreateReview)
	mux.HandleFunc("GET /api/reviews", reviewHandler.ListReviews)

	mux.HandleFunc("POST /api/print-requests", printRequestHandler.CreatePrintRequest)

	mux.HandleFunc("POST /api/users", userHandler.CreateUser)
	mux.HandleFunc("GET /api/users", userHandler.ListUsers)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
