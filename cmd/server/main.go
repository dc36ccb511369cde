// SwiftHerb - AI supplement recommendation server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/swiftherb/swiftherb-server/internal/affiliate"
	"github.com/swiftherb/swiftherb-server/internal/api"
	"github.com/swiftherb/swiftherb-server/internal/assistant"
	"github.com/swiftherb/swiftherb-server/internal/bundle"
	"github.com/swiftherb/swiftherb-server/internal/cache"
	"github.com/swiftherb/swiftherb-server/internal/catalog"
	"github.com/swiftherb/swiftherb-server/internal/chat"
	"github.com/swiftherb/swiftherb-server/internal/config"
	"github.com/swiftherb/swiftherb-server/internal/content"
	"github.com/swiftherb/swiftherb-server/internal/llm"
	"github.com/swiftherb/swiftherb-server/internal/middleware"
	"github.com/swiftherb/swiftherb-server/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, cleanup := config.SetupLogger(cfg.LogFile, slog.LevelInfo)
	slog.SetDefault(logger)
	defer func() {
		if err := cleanup(); err != nil {
			slog.Error("Failed to close log file", "error", err)
		}
	}()

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Static datasets.
	products, err := catalog.Load()
	if err != nil {
		slog.Error("Failed to load product catalog", "error", err)
		os.Exit(1)
	}
	bundles, err := bundle.Load()
	if err != nil {
		slog.Error("Failed to load bundle catalog", "error", err)
		os.Exit(1)
	}
	articles, err := content.LoadArticles()
	if err != nil {
		slog.Error("Failed to load articles", "error", err)
		os.Exit(1)
	}
	pages, err := content.LoadPages()
	if err != nil {
		slog.Error("Failed to load pages", "error", err)
		os.Exit(1)
	}
	slog.Info("Datasets loaded", "products", products.Len(), "bundles", len(bundles.All()))

	// Product store.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	// Seed the store from the embedded catalog when empty.
	count, err := repo.CountProducts(context.Background())
	if err != nil {
		slog.Error("Failed to count products", "error", err)
		os.Exit(1)
	}
	if count == 0 {
		written, err := repo.SeedProducts(context.Background(), products.All())
		if err != nil {
			slog.Error("Failed to seed product store", "error", err)
			os.Exit(1)
		}
		slog.Info("Product store seeded", "written", written)
	}

	// Completion client. Without a key the assistant degrades but the
	// catalog, bundle, and content endpoints stay up.
	var completer llm.Completer
	if cfg.DeepSeekAPIKey == "" {
		slog.Warn("DEEPSEEK_API_KEY not set, assistant replies will be degraded")
		completer = llm.Unconfigured{}
	} else {
		client, err := llm.NewClient(cfg.DeepSeekAPIKey, cfg.DeepSeekAPIURL, cfg.DeepSeekModel, cfg.RequestTimeout)
		if err != nil {
			slog.Error("Failed to initialize completion client", "error", err)
			os.Exit(1)
		}
		completer = client
		slog.Info("Completion client initialized", "model", cfg.DeepSeekModel)
	}

	// Assemble the assistant pipeline.
	links := affiliate.NewLinkBuilder(cfg.PartnerizeCamref)
	responseCache := cache.New[assistant.ChatResponse](cfg.CacheMaxSize)
	resolver := catalog.NewResolver(products)
	svc := assistant.NewService(completer, responseCache, resolver, products, bundles, repo, links, logger)
	svc.SetResponseTTL(cfg.CacheTTL)

	sm := chat.NewSessionManager()
	wsHandler := chat.NewWebSocketHandler(svc, sm)

	apiHandler := api.NewHandler(repo, products, bundles, articles, pages, links, svc)

	healthHandler := api.NewHealthHandler(repo, products.Len(), len(bundles.All()), 5*time.Second)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))
	corsOrigins := []string{"*"}
	if !cfg.IsDevelopment() {
		corsOrigins = []string{cfg.FrontendURL}
	}
	r.Use(middleware.CORS(corsOrigins))

	healthHandler.RegisterHealth(r)
	apiHandler.RegisterRoutes(r)

	// WebSocket endpoint.
	r.Get("/ws/chat", wsHandler.ServeHTTP)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	sm.CloseAll()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
