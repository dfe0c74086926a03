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

	"github.com/Jaymi-01/framez/internal/auth"
	"github.com/Jaymi-01/framez/internal/cache"
	"github.com/Jaymi-01/framez/internal/config"
	"github.com/Jaymi-01/framez/internal/database"
	"github.com/Jaymi-01/framez/internal/handlers"
	"github.com/Jaymi-01/framez/internal/logger"
	"github.com/Jaymi-01/framez/internal/metrics"
	"github.com/Jaymi-01/framez/internal/middleware"
	"github.com/Jaymi-01/framez/internal/repository"
	"github.com/Jaymi-01/framez/internal/storage"
	"github.com/Jaymi-01/framez/internal/telemetry"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Close()

	logger.Log.Info("Framez server starting",
		zap.String("environment", cfg.Environment),
		zap.String("media_provider", cfg.MediaProvider),
	)

	tp, err := telemetry.InitTracer(context.Background(), telemetry.Config{
		ServiceName:  "framez-api",
		Environment:  cfg.Environment,
		OTLPEndpoint: cfg.OTelEndpoint,
		Enabled:      cfg.OTelEnabled,
		SamplingRate: cfg.OTelSamplingRate,
	})
	if err != nil {
		logger.WarnWithFields("Tracing disabled", err)
	}

	if err := database.Initialize(cfg); err != nil {
		logger.FatalWithFields("Failed to initialize database", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		logger.FatalWithFields("Failed to run migrations", err)
	}

	userRepo := repository.NewUserRepository(database.DB)
	authService := auth.NewService(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL)

	var redisClient *cache.RedisClient
	if cfg.RedisEnabled() {
		redisClient, err = cache.NewRedisClient(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
		if err != nil {
			logger.WarnWithFields("Redis unavailable, logout will not revoke tokens", err)
		} else {
			authService.SetRevoker(redisClient)
			defer redisClient.Close()
		}
	} else {
		logger.Log.Info("REDIS_HOST not set, logout will not revoke tokens")
	}

	h := handlers.NewHandlers(
		repository.NewPostRepository(database.DB),
		repository.NewLikeRepository(database.DB),
		repository.NewCommentRepository(database.DB),
	)

	media, err := storage.NewFromConfig(context.Background(), cfg)
	if err != nil {
		logger.WarnWithFields("Media upload disabled, image posts will be rejected", err)
	} else {
		h.SetMediaService(media)
	}

	authHandlers := handlers.NewAuthHandlers(authService, cfg.ProfilePictures)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics.Initialize()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.GinLoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	if cfg.OTelEnabled {
		r.Use(middleware.TracingMiddleware("framez-api"))
	}
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-ID"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		if err := database.Health(ctx); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = err.Error()
		}
		redisStatus := "disabled"
		if authService.RevocationEnabled() {
			redisStatus = "ok"
			if err := redisClient.Ping(ctx); err != nil {
				redisStatus = err.Error()
			}
		}

		c.JSON(status, gin.H{
			"status":    http.StatusText(status),
			"timestamp": time.Now().UTC(),
			"service":   "framez-api",
			"database":  dbStatus,
			"redis":     redisStatus,
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterRoutes(r, h, authHandlers)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Info("Framez API listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.FatalWithFields("Failed to start server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorWithFields("Server forced to shutdown", err)
	}
	if err := telemetry.Shutdown(ctx, tp); err != nil {
		logger.WarnWithFields("Tracer shutdown failed", err)
	}

	logger.Log.Info("Server exited")
}
