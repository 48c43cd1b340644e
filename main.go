package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"mvoss.dev/internal/catalog"
	"mvoss.dev/internal/config"
	"mvoss.dev/internal/relay"
	"mvoss.dev/internal/render"
	"mvoss.dev/internal/store"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.Mode)
	defer logger.Sync()

	st, err := store.Open(cfg.DBPath, logger)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer st.Close()

	cat := catalog.Default()
	pipeline := render.NewPipeline(cat, render.NewTarget(),
		render.WithStagger(cfg.RevealStagger),
		render.WithLogger(logger))
	defer pipeline.Close()

	sender := relay.NewSMTPSender(relay.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		To:       cfg.ToEmail,
	}, logger)

	a := newApp(cfg, logger, st, cat, pipeline, sender)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Privacy cleanup runs off the startup path, as before.
	go func() {
		if _, err := st.PurgeOldVisitors(ctx, cfg.VisitorMaxAge); err != nil {
			logger.Warn("visitor cleanup", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: a.router(),
	}

	go func() {
		logger.Info("listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func newLogger(mode string) *zap.Logger {
	if mode == "release" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
