package main

import (
	"context"
	"time"

	"github.com/anderson-nunes/account-service/internal/infrastructure/db/mongo"
	"github.com/anderson-nunes/account-service/internal/infrastructure/security"
	"github.com/anderson-nunes/account-service/internal/pkg/config"
	"github.com/anderson-nunes/account-service/internal/seed"
	"github.com/anderson-nunes/account-service/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "account-seed"})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	repo := mongo.NewAccountRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create account indexes")
	}

	seeder := seed.NewSeeder(repo, security.NewUUIDGenerator(), security.NewBcryptHasher(cfg.Auth.BcryptCost), log)
	created, err := seeder.EnsureAdmin(ctx, seed.Admin{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin account")
	}
	log.Info().Bool("created", created).Str("email", cfg.Admin.Email).Msg("seed finished")
}
