package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartmarshall/oneonone-backend/internal/adapter/postgres"
	actionitemrepo "github.com/heartmarshall/oneonone-backend/internal/adapter/postgres/actionitem"
	meetingrepo "github.com/heartmarshall/oneonone-backend/internal/adapter/postgres/meeting"
	memberrepo "github.com/heartmarshall/oneonone-backend/internal/adapter/postgres/member"
	topicrepo "github.com/heartmarshall/oneonone-backend/internal/adapter/postgres/topic"
	"github.com/heartmarshall/oneonone-backend/internal/adapter/rediscache"
	"github.com/heartmarshall/oneonone-backend/internal/config"
	"github.com/heartmarshall/oneonone-backend/internal/service/analytics"
	"github.com/heartmarshall/oneonone-backend/internal/service/meeting"
	"github.com/heartmarshall/oneonone-backend/internal/service/member"
	"github.com/heartmarshall/oneonone-backend/internal/transport/middleware"
	"github.com/heartmarshall/oneonone-backend/internal/transport/rest"
)

// Run wires the whole application together and serves HTTP until the context
// is cancelled or SIGINT/SIGTERM arrives, then shuts down gracefully.
func Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	// A nil cache is a valid disabled cache; every consumer treats it as
	// a permanent miss.
	var cache *rediscache.Cache
	if cfg.Redis.Enabled() {
		cache, err = rediscache.New(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer cache.Close() //nolint:errcheck
		logger.Info("read model cache enabled", slog.String("addr", cfg.Redis.Addr))
	}

	members := memberrepo.New(pool)
	meetings := meetingrepo.New(pool)
	topics := topicrepo.New(pool)
	actionItems := actionitemrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	meetingSvc := meeting.NewService(logger, meetings, topics, actionItems, members, txManager, cache)
	memberSvc := member.NewService(logger, members, cache)
	analyticsSvc := analytics.NewService(logger, members, meetings, topics, actionItems, cache, cfg.Analytics)

	router := rest.NewRouter(
		rest.NewMemberHandler(memberSvc, logger),
		rest.NewMeetingHandler(meetingSvc, logger),
		rest.NewAnalyticsHandler(analyticsSvc, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.RateLimit.PerMinute))
	}
	handler := middleware.Chain(mws...)(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
