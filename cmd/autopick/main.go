package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/DoyleJ11/lcu-autopick/internal/champion"
	"github.com/DoyleJ11/lcu-autopick/internal/config"
	"github.com/DoyleJ11/lcu-autopick/internal/engine"
	"github.com/DoyleJ11/lcu-autopick/internal/httpapi"
	"github.com/DoyleJ11/lcu-autopick/internal/lcu"
	"github.com/DoyleJ11/lcu-autopick/internal/notify"
	"github.com/DoyleJ11/lcu-autopick/internal/stream"
)

const (
	clientWaitTimeout = time.Minute
	reconnectDelay    = 2 * time.Second
	directoryRefresh  = 6 * time.Hour
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache, err := champion.OpenCache(cfg.CachePath)
	if err != nil {
		// Degraded but functional: the directory falls back to its built-in
		// table and live fetches.
		logger.Warn("champion cache unavailable", zap.Error(err))
		cache = nil
	} else {
		defer cache.Close()
	}
	directory := champion.NewDirectory(cache, logger.Named("champion"))

	settings := config.NewStore(cfg.Settings())
	client := lcu.NewClient(cfg.LockfilePaths, logger.Named("lcu"))
	hub := notify.NewHub(ctx)
	eng := engine.New(ctx, client, directory, hub, settings, logger.Named("engine"))

	g, ctx := errgroup.WithContext(ctx)

	// Champion table: load now, refresh periodically. Runs off the engine
	// loop; the directory swaps its table atomically.
	g.Go(func() error {
		directory.Load(ctx)
		ticker := time.NewTicker(directoryRefresh)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				directory.Load(ctx)
			}
		}
	})

	// Connection watcher: wait for the game client, run the push channel,
	// reconnect on loss. Credential discovery failure is not fatal; a later
	// client launch is still picked up.
	g.Go(func() error {
		s := stream.New(client, logger.Named("stream"))
		eng.BindStream(s)

		reportedWaiting := false
		for {
			if err := client.EnsureReady(ctx, clientWaitTimeout); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				if !reportedWaiting {
					logger.Error("league client not detected, still watching", zap.Error(err))
					reportedWaiting = true
				}
				continue
			}
			reportedWaiting = false

			if err := s.Run(ctx); err != nil {
				logger.Warn("push channel lost", zap.Error(err))
			}
			if ctx.Err() != nil {
				return nil
			}
			client.Forget()

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(reconnectDelay):
			}
		}
	})

	// Local UI surface.
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.SetupRoutes(eng, hub, settings),
	}
	g.Go(func() error {
		logger.Info("ui surface listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("exited", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
