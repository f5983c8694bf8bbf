package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres/audit"
	bookrepo "github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres/book"
	lendingrepo "github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres/lending"
	noterepo "github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres/note"
	referencerepo "github.com/heartmarshall/bookshelf-backend/internal/adapter/postgres/reference"
	"github.com/heartmarshall/bookshelf-backend/internal/auth"
	"github.com/heartmarshall/bookshelf-backend/internal/config"
	"github.com/heartmarshall/bookshelf-backend/internal/service/catalog"
	"github.com/heartmarshall/bookshelf-backend/internal/service/lending"
	"github.com/heartmarshall/bookshelf-backend/internal/service/note"
	"github.com/heartmarshall/bookshelf-backend/internal/service/reading"
	"github.com/heartmarshall/bookshelf-backend/internal/service/reference"
	"github.com/heartmarshall/bookshelf-backend/internal/service/statistics"
	"github.com/heartmarshall/bookshelf-backend/internal/transport/dataloader"
	"github.com/heartmarshall/bookshelf-backend/internal/transport/middleware"
	"github.com/heartmarshall/bookshelf-backend/internal/transport/rest"
	"github.com/heartmarshall/bookshelf-backend/pkg/clock"
)

// Run connects to the database and serves HTTP until ctx is cancelled,
// then shuts the server down gracefully.
func Run(ctx context.Context, cfg *config.Config) error {
	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	handler, cleanup, err := NewHandler(cfg, logger, pool, clock.System{})
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// NewHandler wires repositories, services and the REST router over pool.
// The returned cleanup stops background work owned by the handler.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, clk clock.Clock) (http.Handler, func(), error) {
	// Repositories.
	txm := postgres.NewTxManager(pool)
	books := bookrepo.New(pool)
	lendings := lendingrepo.New(pool)
	notes := noterepo.New(pool)
	refs := referencerepo.New(pool)
	audits := auditrepo.New(pool)

	// Services.
	referenceService, err := reference.NewService(logger, refs, cfg.Reference.CacheSize)
	if err != nil {
		return nil, nil, fmt.Errorf("reference service: %w", err)
	}
	catalogService := catalog.NewService(logger, books, notes, lendings, referenceService, audits, txm, clk)
	lendingService := lending.NewService(logger, books, lendings, audits, txm, clk)
	readingService := reading.NewService(logger, books, audits, txm)
	noteService := note.NewService(logger, books, notes, audits, txm, clk)
	statisticsService := statistics.NewService(logger, lendings, clk)

	// Transport.
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := rest.NewRouter(rest.Handlers{
		Books:      rest.NewBookHandler(logger, catalogService, readingService, lendingService, clk),
		Notes:      rest.NewNoteHandler(logger, noteService),
		Statistics: rest.NewStatisticsHandler(logger, statisticsService),
		Reference:  rest.NewReferenceHandler(logger, referenceService),
		Scan:       rest.NewScanHandler(logger, lendingService),
		Health:     rest.NewHealthHandler(BuildVersion(), clk, rest.Probe{Name: "database", Pinger: pool}),
	}, rest.RouterConfig{
		Logger:         logger,
		Auth:           middleware.Auth(jwtManager),
		ScanLimit:      limiter.Limit(cfg.RateLimit.ScanPerMinute),
		Loaders:        &dataloader.Repos{Note: notes},
		CORS:           cfg.CORS,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	return handler, limiter.Stop, nil
}
