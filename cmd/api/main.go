package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/anderson-nunes/account-service/internal/api"
	"github.com/anderson-nunes/account-service/internal/core/ports"
	"github.com/anderson-nunes/account-service/internal/core/service"
	"github.com/anderson-nunes/account-service/internal/infrastructure/db/mongo"
	"github.com/anderson-nunes/account-service/internal/infrastructure/db/redis"
	"github.com/anderson-nunes/account-service/internal/infrastructure/security"
	"github.com/anderson-nunes/account-service/internal/pkg/config"
	"github.com/anderson-nunes/account-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Account Service API
// @version      1.0
// @description  Signup, login and role-gated account directory.
// @BasePath     /
//
// @securityDefinitions.apikey  TokenAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty || cfg.IsDevelopment(),
		Service: "account-service",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Credential store ---
	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	accountRepo := mongo.NewAccountRepository(db)
	if err := accountRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create account indexes")
	}

	// --- Account cache (optional) ---
	var repo ports.AccountRepository = accountRepo
	var rdb *goredis.Client
	if cfg.Redis.CacheEnabled {
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, running without account cache")
		} else {
			defer rdb.Close()
			repo = redis.NewCachedAccountRepository(accountRepo, rdb, cfg.Redis.CacheTTL, log)
		}
	}

	// --- Service ---
	accounts := service.NewAccountService(
		repo,
		security.NewUUIDGenerator(),
		security.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		security.NewBcryptHasher(cfg.Auth.BcryptCost),
		log,
	)

	e := api.NewRouter(api.Dependencies{
		Accounts: accounts,
		Mongo:    db,
		Redis:    rdb,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
