// Package app wires configuration, storage, services, and transport into a
// runnable HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/localehub/catalog-backend/internal/adapter/postgres"
	tagrepo "github.com/localehub/catalog-backend/internal/adapter/postgres/tag"
	translationrepo "github.com/localehub/catalog-backend/internal/adapter/postgres/translation"
	userrepo "github.com/localehub/catalog-backend/internal/adapter/postgres/user"
	"github.com/localehub/catalog-backend/internal/app/populate"
	"github.com/localehub/catalog-backend/internal/auth"
	"github.com/localehub/catalog-backend/internal/cache"
	"github.com/localehub/catalog-backend/internal/config"
	authsvc "github.com/localehub/catalog-backend/internal/service/auth"
	exportsvc "github.com/localehub/catalog-backend/internal/service/export"
	tagsvc "github.com/localehub/catalog-backend/internal/service/tag"
	translationsvc "github.com/localehub/catalog-backend/internal/service/translation"
	"github.com/localehub/catalog-backend/internal/transport/middleware"
	"github.com/localehub/catalog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the service graph, and serves HTTP until ctx is
// canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	store := cache.New(cfg.Cache.MaxEntries, cfg.Cache.TTL)

	translations := translationrepo.New(pool)
	tags := tagrepo.New(pool)
	users := userrepo.New(pool)

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	translationService := translationsvc.NewService(logger, translations, tags, txm, store)
	tagService := tagsvc.NewService(logger, tags, store)
	exportService := exportsvc.NewService(logger, translations, store)
	authService := authsvc.NewService(logger, users, jwt)
	populateRunner := populate.NewRunner(logger, translations, tags, txm, store)

	router := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(pool, BuildVersion()),
		Auth:         rest.NewAuthHandler(authService, logger),
		Translations: rest.NewTranslationHandler(translationService, logger),
		Tags:         rest.NewTagHandler(tagService, logger),
		Exports:      rest.NewExportHandler(exportService, logger),
		Admin:        rest.NewAdminHandler(populateRunner, cfg.Populate, logger),
	})

	rl := middleware.NewRateLimiter(time.Minute)
	defer rl.Stop()

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		mws = append(mws, rl.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws, middleware.Auth(jwt))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      middleware.Chain(mws...)(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info("http server listening", slog.String("addr", srv.Addr))

	select {
	case <-ctx.Done():
		logger.Info("shutting down", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}
