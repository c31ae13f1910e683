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

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/garagemleilao/caixa/internal/config"
	"github.com/garagemleilao/caixa/internal/database"
	"github.com/garagemleilao/caixa/internal/extraction"
	caixaHttp "github.com/garagemleilao/caixa/internal/http"
	healthHandler "github.com/garagemleilao/caixa/internal/http/health"
	webhookHandler "github.com/garagemleilao/caixa/internal/http/webhook"
	"github.com/garagemleilao/caixa/internal/logger"
	"github.com/garagemleilao/caixa/internal/transaction"
	"github.com/garagemleilao/caixa/internal/transaction/postgrest"
	txStore "github.com/garagemleilao/caixa/internal/transaction/store"
	"github.com/garagemleilao/caixa/internal/webhook"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		boot := logger.New("info", "console")
		boot.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	extractor, err := extraction.FromConfig(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.Group.ID == "" {
		log.Warn().Msg("WPP_GROUP_ID is empty: messages from every conversation will be processed")
	}

	var (
		transactionService = transaction.NewService(repo)
		webhookService     = webhook.NewService(extractor, transactionService, cfg.Group.ID)
	)

	router := caixaHttp.New(
		log,
		cfg.Server.AllowedOrigins,
		webhookHandler.NewHandler(webhookService),
		healthHandler.NewHandler(transactionService),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("store", cfg.Store()).
			Str("provider", cfg.Provider()).
			Msg("starting server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (transaction.Repository, func(), error) {
	switch cfg.Store() {
	case config.StorePostgres:
		db, err := database.Open(ctx, cfg.DB.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}

		return txStore.New(db), func() { _ = db.Close() }, nil
	default:
		store, err := postgrest.New(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Supabase.Table)
		if err != nil {
			return nil, nil, fmt.Errorf("creating postgrest client: %w", err)
		}

		return store, func() {}, nil
	}
}
