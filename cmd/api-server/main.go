package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"justco/database"
	"justco/internal/config"
	"justco/internal/logger"
	httpapi "justco/internal/microservices/http-api"
	"justco/internal/microservices/http-api/cache"
	"justco/internal/microservices/http-api/repository"
	"justco/internal/microservices/http-api/service"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		fallback := logger.L()
		fallback.Fatal().Err(err).Msg("could not load config")
	}

	log := logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "justco-api",
	})
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to the database
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}
	defer database.Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("could not get sql.DB")
	}

	// Optional room-name cache
	var roomCache cache.RoomCache = cache.NoopRoomCache{}
	if cfg.CacheEnabled() {
		redisCache, err := cache.NewRedisRoomCache(cfg.RedisURL, cfg.RedisPassword, cfg.CachePrefix, cfg.CacheTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to redis")
		}
		roomCache = redisCache
		log.Info().Dur("ttl", cfg.CacheTTL).Msg("room cache enabled")
	}
	defer roomCache.Close()

	roomService := service.NewRoomService(repository.NewRoomRepository(db), roomCache)
	messageService := service.NewMessageService(repository.NewMessageRepository(db))

	if !cfg.AdminEnabled() {
		log.Warn().Msg("ADMIN_JWT_SECRET not set, room deletion is disabled")
	}

	router := httpapi.NewRouter(httpapi.Dependencies{
		Logger:         log,
		DB:             sqlDB,
		RoomService:    roomService,
		MessageService: messageService,
		AdminSecret:    cfg.AdminJWTSecret,
		CORSOrigins:    cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
