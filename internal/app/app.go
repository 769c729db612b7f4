package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/huayu-backend/internal/adapter/llm/claude"
	"github.com/heartmarshall/huayu-backend/internal/config"
	"github.com/heartmarshall/huayu-backend/internal/service/conversation"
	"github.com/heartmarshall/huayu-backend/internal/service/dictionary"
	"github.com/heartmarshall/huayu-backend/internal/service/news"
	"github.com/heartmarshall/huayu-backend/internal/service/quota"
	"github.com/heartmarshall/huayu-backend/internal/service/semantic"
	"github.com/heartmarshall/huayu-backend/internal/service/vocabulary"
	"github.com/heartmarshall/huayu-backend/internal/speech"
	"github.com/heartmarshall/huayu-backend/internal/transport/middleware"
	"github.com/heartmarshall/huayu-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the state
// store, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog := NewLogger(cfg.Log)
	defer closeLog() //nolint:errcheck

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("model", cfg.LLM.Model),
	)

	clock := clockwork.NewRealClock()

	store, closeStore, err := openStore(ctx, cfg.Storage, clock, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	gen := claude.New(cfg.LLM, logger)
	voice := speech.Unavailable{}

	vocabSvc := vocabulary.NewService(logger,
		vocabulary.NewStore(store, logger),
		quota.NewPolicy(cfg.Vocabulary.DailyLimit, clock, cfg.Vocabulary.Location),
		gen, clock, cfg.Vocabulary.BatchSize,
	)
	convSvc := conversation.NewService(logger, gen, voice, clock, conversation.Config{
		SessionTTL:    cfg.Conversation.SessionTTL,
		SweepInterval: cfg.Conversation.SweepInterval,
		MaxSessions:   cfg.Conversation.MaxSessions,
		HistoryLimit:  cfg.Conversation.HistoryLimit,
	})

	var limiter *middleware.RateLimiter
	var limit middleware.Middleware
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, clock)
		limit = limiter.Limit()
	}

	router := rest.NewRouter(rest.Handlers{
		Health:       rest.NewHealthHandler(store, cfg.Storage.Driver, BuildVersion()),
		Capabilities: rest.NewCapabilitiesHandler(voice, BuildVersion()),
		Vocabulary:   rest.NewVocabularyHandler(vocabSvc, logger),
		Conversation: rest.NewConversationHandler(convSvc, logger),
		Lookup: rest.NewLookupHandler(
			dictionary.NewService(logger, gen),
			semantic.NewService(logger, gen),
			news.NewService(logger, gen),
			logger,
		),
	}, middleware.Chain(limit))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error { return convSvc.Run(gctx) })
	if limiter != nil {
		g.Go(func() error { return limiter.Run(gctx) })
	}

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("application stopped with error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("application stopped")
	return nil
}
