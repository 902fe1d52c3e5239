package main

// @title Timeline Visualizer API
// @version 1.0.0
// @description Сервис просмотра истории местоположений Google Timeline. Принимает JSON-экспорт, нормализует его в трек, визиты и перемещения и отдает данные для отрисовки карты.
// @description
// @description Основные возможности:
// @description - Загрузка экспорта Timeline.json (Android и iOS форматы)
// @description - Фильтрация по календарным датам
// @description - Тепловая карта, границы представления и лента последних событий
// @description - Сохранение настроек отображения

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/timeline-visualizer/docs"
	"github.com/timeline-visualizer/internal/config"
	httpDelivery "github.com/timeline-visualizer/internal/delivery/http"
	"github.com/timeline-visualizer/internal/delivery/http/handler"
	"github.com/timeline-visualizer/internal/domain/repository"
	"github.com/timeline-visualizer/internal/pkg/logger"
	"github.com/timeline-visualizer/internal/repository/cache"
	"github.com/timeline-visualizer/internal/repository/memory"
	"github.com/timeline-visualizer/internal/session"
	"github.com/timeline-visualizer/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Timeline Visualizer")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("timezone", cfg.Timeline.Location.String()),
		zap.Int64("max_upload_bytes", cfg.Timeline.MaxUploadBytes),
		zap.Int("max_track_points", cfg.Timeline.MaxTrackPoints),
	)

	// 3. Preferences storage: Redis if enabled, otherwise in-process memory
	var (
		cacheRepo   repository.CacheRepository
		redisClient *cache.Redis
	)
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisClient.Health(ctx)
		cancel()
		if err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}

		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected", zap.String("addr", cfg.GetRedisAddr()))
	} else {
		cacheRepo = memory.NewCacheRepository()
		log.Info("Redis disabled, preferences are kept in memory")
	}

	// 4. Initialize Repositories
	preferencesRepo := cache.NewPreferencesRepository(cacheRepo, cfg.Preferences.Key, cfg.Preferences.TTL, log)

	log.Info("Repositories initialized")

	// 5. Initialize Use Cases
	timelineUC := usecase.NewTimelineUseCase(session.New(), cfg.Timeline, log)
	preferencesUC := usecase.NewPreferencesUseCase(preferencesRepo, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	timelineHandler := handler.NewTimelineHandler(timelineUC, log)
	preferencesHandler := handler.NewPreferencesHandler(preferencesUC, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		timelineHandler,
		preferencesHandler,
	)

	log.Info("HTTP server initialized")

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
