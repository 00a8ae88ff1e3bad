package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/motionmatrix/factory-portal/internal/config"
	"github.com/motionmatrix/factory-portal/internal/server"
	"github.com/motionmatrix/factory-portal/internal/storage"
	"github.com/motionmatrix/factory-portal/internal/storage/memory"
	"github.com/motionmatrix/factory-portal/internal/storage/postgres"
)

func main() {
	loadLocalEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	configureLogging(cfg.LogLevel)

	ctx := context.Background()
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("init store: %v", err)
	}
	defer closeStore()

	srv := server.New(cfg, store)

	go func() {
		log.WithFields(log.Fields{
			"addr":  cfg.HTTPAddress(),
			"store": cfg.StoreBackend,
		}).Info("MotionMatrix portal API listening")
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Warn("graceful shutdown error")
	}
}

func openStore(ctx context.Context, cfg config.Config) (storage.AccountStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		store, err := postgres.NewAccountStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return memory.New(), func() {}, nil
	}
}

func configureLogging(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

func loadLocalEnv() {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found; relying on existing environment")
	}
}
