// @title Hotel Info API
// @version 1.0
// @description Cities, hotels, rooms, room classes, amenities, photos and bookings.
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotelinfo/config"
	"hotelinfo/constants"
	"hotelinfo/jobs"
	"hotelinfo/metrics"
	middlewares "hotelinfo/middleware"
	"hotelinfo/repository"
	"hotelinfo/routes"
	"hotelinfo/services"
	"hotelinfo/services/logger"
	"hotelinfo/services/notification"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("dev", logger.InfoLevel)
		boot.Fatal().Err(err).Msg("load config")
	}

	zl := logger.New(cfg.Primary.Env, logger.ParseLevel(cfg.Primary.LogLevel))
	log := logger.NewZerologLogger(zl)
	ctx := context.Background()

	db, err := config.ConnectDB(cfg.Database, cfg.Primary.LogLevel == "debug")
	if err != nil {
		zl.Fatal().Err(err).Msg("connect database")
	}
	repo := repository.New(db)
	if err := repo.Migrate(ctx); err != nil {
		zl.Fatal().Err(err).Msg("migrate database")
	}

	var cache services.Cache = services.NopCache{}
	rdb, err := config.ConnectRedis(ctx, cfg.Redis)
	switch {
	case err != nil:
		zl.Warn().Err(err).Msg("redis unavailable, caching disabled")
	case rdb != nil:
		cache = services.NewRedisCache(rdb)
		defer rdb.Close()
	}

	cld, err := config.ConnectCloudinary(cfg.Cloudinary)
	if err != nil {
		zl.Fatal().Err(err).Msg("configure cloudinary")
	}
	if cld == nil {
		zl.Warn().Msg("cloudinary not configured, photo uploads will fail")
	}
	blobs := services.NewCloudinaryStore(cld, cfg.Cloudinary.Folder)

	tokens := services.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.Issuer, cfg.Auth.Audience,
		time.Duration(cfg.Auth.TokenExpiryMinutes)*time.Minute)
	auth := services.NewAuthService(services.AuthServiceOptions{Users: repo, Tokens: tokens, Logger: log})
	if err := auth.SeedUsers(ctx, []services.SeedUser{
		{Username: cfg.Auth.AdminUsername, Password: cfg.Auth.AdminPassword, FirstName: "Admin", Role: constants.RoleAdmin},
		{Username: cfg.Auth.UserUsername, Password: cfg.Auth.UserPassword, FirstName: "User", Role: constants.RoleUser},
	}); err != nil {
		zl.Fatal().Err(err).Msg("seed users")
	}
	if cfg.Primary.SeedSampleData {
		seeded, err := repo.SeedSampleData(ctx)
		if err != nil {
			zl.Fatal().Err(err).Msg("seed sample data")
		}
		if seeded {
			log.Info("sample data seeded")
		}
	}

	router, m, c := config.InitApp(cfg)
	defer m.Close()

	booking := services.NewBookingFacade(services.BookingFacadeOptions{
		Store:    repo,
		Notifier: notification.NewMelodyService(m),
		Logger:   log,
	})

	if err := jobs.InitCronJobs(c, repo, log); err != nil {
		zl.Fatal().Err(err).Msg("init cron jobs")
	}
	defer c.Stop()

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, routes.Dependencies{
		Repo:         repo,
		Cache:        cache,
		Blobs:        blobs,
		Tokens:       tokens,
		Auth:         auth,
		Booking:      booking,
		Search:       services.NewSearchService(repo, cache, log),
		Logger:       log,
		Registry:     metrics.InitRegistry(),
		LoginLimiter: middlewares.NewRateLimiter(cfg.Server.LoginRateLimit, cfg.Server.LoginBurst),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zl.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error().Err(err).Msg("graceful shutdown")
	}
	zl.Info().Msg("server exited")
}
