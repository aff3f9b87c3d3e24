package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/CSCI-GA-2820-FA25-003/wishlists/docs"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/api/handlers"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/api/middleware"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/config"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/health"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/metrics"
	repository "github.com/CSCI-GA-2820-FA25-003/wishlists/internal/repositories"
	service "github.com/CSCI-GA-2820-FA25-003/wishlists/internal/services"
	"github.com/CSCI-GA-2820-FA25-003/wishlists/internal/telemetry"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Wishlist Service API
//	@version					1.0.0
//	@description				RESTful service for managing customer wishlists and their items.
//	@host						localhost:8080
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {

	// Load config
	cfg := config.MustLoad()

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	ctx := context.Background()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg.Otel, health.Version)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	db, err := repository.Open(ctx, cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := repository.Migrate(ctx, db); err != nil {
			slog.Error("❌ Error applying database migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	store := repository.NewStore(db)
	wishlistService := service.NewWishlistService(store)
	itemService := service.NewItemService(store)

	// Redis setup, only needed by the rate limiter
	var rateLimitRepo repository.RateLimitRepository
	if cfg.RedisConnect.Configured() && cfg.RateConfig.Enabled {
		redisClient, err := repository.NewRedisClient(cfg)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer redisClient.Close()

		rateLimitRepo = repository.NewRateLimitRepo(redisClient, cfg.RateConfig)
	} else {
		slog.Warn("Rate limiting disabled", slog.Bool("redis_configured", cfg.RedisConnect.Configured()))
	}

	wishlistHandler := handlers.NewWishlistHandler(wishlistService, cfg.BaseURL)
	itemHandler := handlers.NewItemHandler(itemService, cfg.BaseURL)

	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))
	rateLimiter := middleware.NewRateLimiter(rateLimitRepo)

	if !authMiddleware.Enabled() {
		slog.Warn("JWT_KEY is empty, mutating routes are not authenticated")
	}

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", health.Version))

	// mutating routes: authenticate, then throttle per caller, then require a JSON body
	guard := func(h http.HandlerFunc) http.HandlerFunc {
		return authMiddleware.Authenticate(rateLimiter.Limit(h))
	}
	guardJSON := func(h http.HandlerFunc) http.HandlerFunc {
		return guard(middleware.RequireJSON(h))
	}

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /{$}", handlers.Index(health.Version, cfg.BaseURL))
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	routerMux.HandleFunc("GET /wishlists", wishlistHandler.ListWishlists())
	routerMux.HandleFunc("POST /wishlists", guardJSON(wishlistHandler.CreateWishlist()))
	routerMux.HandleFunc("GET /wishlists/{wishlist_id}", wishlistHandler.GetWishlist())
	routerMux.HandleFunc("PUT /wishlists/{wishlist_id}", guardJSON(wishlistHandler.UpdateWishlist()))
	routerMux.HandleFunc("DELETE /wishlists/{wishlist_id}", guard(wishlistHandler.DeleteWishlist()))
	routerMux.HandleFunc("PUT /wishlists/{wishlist_id}/clear", guard(wishlistHandler.ClearWishlist()))
	routerMux.HandleFunc("GET /wishlists/{wishlist_id}/share", wishlistHandler.ShareWishlist())

	routerMux.HandleFunc("GET /wishlists/{wishlist_id}/items", itemHandler.ListItems())
	routerMux.HandleFunc("POST /wishlists/{wishlist_id}/items", guardJSON(itemHandler.CreateItem()))
	routerMux.HandleFunc("GET /wishlists/{wishlist_id}/items/{item_id}", itemHandler.GetItem())
	routerMux.HandleFunc("PUT /wishlists/{wishlist_id}/items/{item_id}", guardJSON(itemHandler.UpdateItem()))
	routerMux.HandleFunc("DELETE /wishlists/{wishlist_id}/items/{item_id}", guard(itemHandler.DeleteItem()))

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "wishlists")

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
			done <- syscall.SIGTERM
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
