package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minoq/storefront/internal/api"
	"github.com/minoq/storefront/internal/core/domain"
	"github.com/minoq/storefront/internal/core/ports"
	"github.com/minoq/storefront/internal/core/service"
	"github.com/minoq/storefront/internal/infrastructure/config"
	mongostore "github.com/minoq/storefront/internal/infrastructure/db/mongo"
	redisstore "github.com/minoq/storefront/internal/infrastructure/db/redis"
	"github.com/minoq/storefront/internal/infrastructure/memory"
	"github.com/minoq/storefront/internal/pkg/id"
	"github.com/minoq/storefront/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	deps := api.Dependencies{
		Logger:           log,
		Catalog:          memory.NewCatalogRepository(domain.SeedProducts()),
		IDs:              id.New(),
		Links:            domain.NewLinkBuilder(cfg.WhatsAppNumber),
		FallbackImageURL: cfg.FallbackImageURL,
		JWTSecret:        cfg.JWTSecret,
		SessionTTL:       cfg.SessionTTL,
		Verifier:         pickVerifier(cfg),
	}

	// Change note persistence is best-effort by design: without Mongo the
	// note simply lives for the process only.
	if cfg.Mongo.URI != "" {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		defer func() {
			if err := mongostore.Disconnect(context.Background(), client); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect failed")
			}
		}()
		deps.Mongo = db
		deps.Notes = mongostore.NewNoteRepository(db)
	} else {
		log.Warn().Msg("MONGO_URI not set, change note will not survive restarts")
		deps.Notes = memory.NewNoteRepository()
	}

	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		deps.Redis = rdb
		deps.Sessions = redisstore.NewSessionRegistry(rdb)
	} else {
		log.Info().Msg("REDIS_ADDR not set, admin sessions held in memory")
		deps.Sessions = memory.NewSessionRegistry()
	}

	e := api.NewRouter(deps)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("storefront listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// pickVerifier selects the access-code verifier: bcrypt hash when configured,
// otherwise the plain exact-equality check the storefront documents.
func pickVerifier(cfg *config.Config) ports.CodeVerifier {
	if cfg.AdminCodeBcrypt != "" {
		return service.NewBcryptCodeVerifier(cfg.AdminCodeBcrypt)
	}
	return service.NewPlainCodeVerifier(cfg.AdminCode)
}
