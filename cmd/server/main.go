package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DoyleJ11/battle-royale-backend/internal/config"
	"github.com/DoyleJ11/battle-royale-backend/internal/engine"
	"github.com/DoyleJ11/battle-royale-backend/internal/eventlog"
	"github.com/DoyleJ11/battle-royale-backend/internal/httpapi"
	"github.com/DoyleJ11/battle-royale-backend/internal/hub"
	"github.com/DoyleJ11/battle-royale-backend/internal/season"
	"github.com/DoyleJ11/battle-royale-backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cfg config.Config, logger *zap.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h := hub.NewHub(ctx, logger.Named("hub"), cfg.HubBuffer)
	e := engine.New(
		engine.WithLogger(logger.Named("engine")),
		engine.WithPublisher(h),
		engine.WithSeasonOracle(cfg.SeasonOracle),
	)

	g, ctx := errgroup.WithContext(ctx)

	if cfg.DatabaseURL != "" {
		st, openErr := store.Open(cfg.DatabaseURL)
		if openErr != nil {
			return openErr
		}
		defer func() { err = multierr.Append(err, st.Close()) }()

		// Sized well above the hub buffer so the recorder is not dropped as a slow subscriber.
		events := make(chan eventlog.Event, 1024)
		rec := store.NewRecorder(st, e, logger.Named("store"))
		if !h.Subscribe("store-"+rec.RunID(), events) {
			return errors.New("hub stopped before store subscribed")
		}
		g.Go(func() error {
			if err := rec.Run(ctx, events); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
		logger.Info("persistence enabled", zap.String("run_id", rec.RunID()))
	}

	if cfg.SeasonRotation {
		sched, schedErr := season.New(e, cfg.SeasonOracle, engine.SeasonDuration, logger.Named("season"))
		if schedErr != nil {
			return schedErr
		}
		sched.Start()
		defer func() { err = multierr.Append(err, sched.Shutdown()) }()
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.SetupRoutes(e, h, logger.Named("http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		select {
		case h.Inbox() <- hub.Shutdown{}:
		case <-h.Done():
		}
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
