package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"moviehub/database"
	"moviehub/internal/config"
	"moviehub/internal/events"
	"moviehub/internal/logging"
	"moviehub/internal/microservices/http-api/handler"
	"moviehub/internal/microservices/http-api/middleware"
	"moviehub/internal/microservices/http-api/repository"
	"moviehub/internal/microservices/http-api/service"
	"moviehub/internal/storage"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// Setup structured logging
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server_error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the database
	db, err := database.ConnectDB(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	rdb, err := connectRedis(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	pub := connectBroker(cfg, logger)
	defer pub.Close()

	maxUpload, err := cfg.UploadMaxBytes()
	if err != nil {
		return err
	}
	files, err := storage.NewLocalStore(cfg.UploadDir, cfg.UploadBaseURL, maxUpload)
	if err != nil {
		return err
	}

	if err := middleware.RegisterValidators(); err != nil {
		return err
	}

	limits := service.DefaultLimits()
	limits.DefaultPageSize = cfg.DefaultPageSize
	limits.MaxPageSize = cfg.MaxPageSize
	limits.LandingPageSize = cfg.LandingPageSize

	movieRepo := repository.NewMovieRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	cinemaRepo := repository.NewCinemaRepository(db)
	actorRepo := repository.NewActorRepository(db)

	notes := service.NewNotifier(pub)
	actorSvc := service.NewActorService(actorRepo, files, notes, limits)
	movieSvc := service.NewMovieService(movieRepo, genreRepo, cinemaRepo, files, notes, limits)

	var redisCheck handler.Check
	if rdb != nil {
		redisCheck = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	routes := handler.Router{
		Movies:  handler.NewMovieHandler(movieSvc, actorSvc),
		Actors:  handler.NewActorHandler(actorSvc),
		Genres:  handler.NewGenreHandler(service.NewGenreService(genreRepo, limits)),
		Cinemas: handler.NewCinemaHandler(service.NewCinemaService(cinemaRepo, limits)),
		Health: handler.NewHealthHandler(map[string]handler.Check{
			"database": func(ctx context.Context) error { return database.Ping(ctx, db) },
			"redis":    redisCheck,
		}),
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Deadline(cfg.RequestTimeout))

	r.Static("/uploads", cfg.UploadDir)

	var cache *middleware.ResponseCache
	if rdb != nil {
		cache = middleware.NewResponseCache(rdb, cfg.CacheTTL)
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	verifier := middleware.NewTokenVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)

	routes.Mount(r, handler.Guards{
		Write: []gin.HandlerFunc{
			limiter.Middleware(),
			middleware.AuthMiddleware(verifier),
			cache.Purge(),
		},
		Cached: []gin.HandlerFunc{cache.Cache()},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting_http_server", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("received_shutdown_signal")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	// handlers are done; let their events reach the broker before it closes
	if err := notes.Wait(shutdownCtx); err != nil {
		logger.Warn("pending_events_dropped", "error", err)
	}
	logger.Info("server_stopped_gracefully")
	return nil
}

// connectRedis returns nil when caching is off or Redis is unreachable; the
// API then serves every request from the database.
func connectRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*redis.Client, error) {
	if !cfg.CacheEnabled || cfg.RedisURL == "" {
		logger.Info("response cache disabled")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unreachable, response cache disabled", "error", err)
		_ = rdb.Close()
		return nil, nil
	}
	return rdb, nil
}

func connectBroker(cfg *config.Config, logger *slog.Logger) events.Publisher {
	if cfg.RabbitMQURL == "" {
		logger.Info("no broker configured, catalog events are dropped")
		return events.NoopPublisher{}
	}

	pub, err := events.NewAMQPPublisher(cfg.RabbitMQURL)
	if err != nil {
		logger.Warn("rabbitmq unreachable, catalog events are dropped", "error", err)
		return events.NoopPublisher{}
	}
	return pub
}
