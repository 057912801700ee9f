// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"giftwise/internal/api"
	"giftwise/internal/auth"
	"giftwise/internal/catalog"
	"giftwise/internal/common/aws"
	"giftwise/internal/common/config"
	"giftwise/internal/common/database"
	"giftwise/internal/common/logger"
	"giftwise/internal/gemini"
	"giftwise/internal/recommend"
	"giftwise/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting giftwise server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	if err := store.EnsureSchema(ctx, pg); err != nil {
		zapLog.Fatal("schema bootstrap failed", zap.Error(err))
	}

	// --- Init Redis with retry ---
	var rdb *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rdb, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rdb.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rdb.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Load catalog and seed the gift index ---
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}
	zapLog.Info("Catalog loaded", zap.Int("gifts", cat.Len()))

	giftStore := store.NewGiftStore(esClient)
	if err := giftStore.SeedFromCatalog(ctx, cat); err != nil {
		// The API still serves recommendations from the in-process catalog.
		log.WithError(err).Warn("gift index seeding failed", nil)
	}

	// --- Init Gemini client; a missing key degrades to the catalog ---
	var requester gemini.Requester
	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini, log)
	if err != nil {
		log.WithError(err).Warn("gemini client unavailable, serving curated picks only", nil)
	} else {
		requester = geminiClient
		defer geminiClient.Close()
	}

	// --- Wire stores and services ---
	userStore := store.NewUserStore(pg)
	sessionStore := store.NewSessionStore(rdb)
	savedGiftStore := store.NewSavedGiftStore(rdb)
	recStore := store.NewRecommendationStore(esClient)

	recommender := recommend.NewService(requester, recommend.NewFallback(cat), recStore, log)

	var mailer auth.Mailer
	if cfg.Notifications.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Notifications.Region, cfg.Notifications.SenderEmail)
		if err != nil {
			zapLog.Fatal("ses client init failed", zap.Error(err))
		}
		mailer = sesClient
	}

	tokens := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		config.GetDuration(cfg.Auth.TokenTTLMs),
		config.GetDuration(cfg.Auth.ResetTTLMs),
	)
	authService := auth.NewService(
		userStore, sessionStore, tokens, mailer,
		cfg.Auth.BcryptCost, cfg.Notifications.ResetURL, log,
	)

	router := api.NewRouter(api.Deps{
		Auth:        authService,
		Recommender: recommender,
		History:     recStore,
		Gifts:       giftStore,
		Saved:       savedGiftStore,
		Users:       userStore,
		Cookie: api.CookieConfig{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
		},
		Logger: log,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Engine(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeoutMs),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeoutMs),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Server.ShutdownGraceMs))
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("shutdown incomplete", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}
