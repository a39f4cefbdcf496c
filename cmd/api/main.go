package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"youquote/internal/app"
	"youquote/internal/config"
	"youquote/internal/database"
	"youquote/internal/modules/auth"
	jwtsvc "youquote/internal/pkg/jwt"
	"youquote/internal/pkg/logger"
	"youquote/internal/repository"
)

func main() {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init("dev", false)
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger.Init(cfg.AppEnv, cfg.Debug)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config) error {
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("database migration: %w", err)
	}

	var revoked repository.RevokedTokenStore = repository.NewRevokedTokenRepository(db)
	if cfg.RedisAddr != "" {
		client, err := database.ConnectRedis(context.Background(), cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer client.Close()
		revoked = repository.NewRedisRevokedTokenStore(client)
	}

	router := app.NewRouter(app.Deps{
		DB:      db,
		JWT:     jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL),
		Revoked: revoked,
		Cookie: auth.CookieSettings{
			Name:     cfg.CookieName,
			Secure:   cfg.CookieSecure,
			SameSite: cfg.SameSite(),
		},
		CORSOrigins: cfg.CORSAllowedOrigins,
		Debug:       cfg.Debug,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", map[string]interface{}{
			"port": cfg.Port,
			"env":  cfg.AppEnv,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case <-quit:
	}

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", err)
		return err
	}
	return nil
}
