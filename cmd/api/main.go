package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/navicula/navicula/internal/api"
	"github.com/navicula/navicula/internal/core/ports"
	"github.com/navicula/navicula/internal/core/service"
	"github.com/navicula/navicula/internal/infrastructure/configfile"
	mongostore "github.com/navicula/navicula/internal/infrastructure/db/mongo"
	redisdb "github.com/navicula/navicula/internal/infrastructure/db/redis"
	"github.com/navicula/navicula/internal/infrastructure/notify"
	"github.com/navicula/navicula/internal/infrastructure/settingsfile"
	appconfig "github.com/navicula/navicula/internal/pkg/config"
	"github.com/navicula/navicula/pkg/logger"
)

func main() {
	cfg := appconfig.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	ctx := context.Background()

	configStore := configfile.New(cfg.ConfigPath)

	var (
		settingsRepo ports.SettingsRepository
		mongoDB      *driver.Database
	)
	switch cfg.SettingsBackend {
	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() { _ = client.Disconnect(ctx) }()
		mongoDB = db
		settingsRepo = mongostore.NewSettingsRepository(db)
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo settings backend")
	default:
		settingsRepo = settingsfile.New(cfg.SettingsPath)
		log.Info().Str("path", cfg.SettingsPath).Msg("using file settings backend")
	}

	var (
		countCache  ports.CountCache
		redisClient *redis.Client
	)
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
		redisClient = rdb
		countCache = redisdb.NewCountCache(rdb, cfg.NotifyCacheTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("notification count cache enabled")
	}

	navigationService := service.NewNavigationService(configStore, log)
	settingsService := service.NewSettingsService(configStore, settingsRepo, log)
	notificationService := service.NewNotificationService(configStore, settingsRepo, countCache, cfg.NotifyTimeout, log)
	notificationService.Register(notify.IntegrationTypeVikunja, notify.NewVikunjaProvider(nil, log))

	e := api.NewRouter(api.Dependencies{
		Navigation:    navigationService,
		Settings:      settingsService,
		Notifications: notificationService,
		Configs:       configStore,
		Mongo:         mongoDB,
		Redis:         redisClient,
		Logger:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("navicula API listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
