package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/quickrecap/recap-pipeline/internal/blobstore"
	"github.com/quickrecap/recap-pipeline/internal/config"
	"github.com/quickrecap/recap-pipeline/internal/logger"
	"github.com/quickrecap/recap-pipeline/internal/pipeline"
	"github.com/quickrecap/recap-pipeline/internal/report"
	"github.com/quickrecap/recap-pipeline/internal/store"
	"github.com/quickrecap/recap-pipeline/internal/transcode"
	"github.com/quickrecap/recap-pipeline/internal/transcriber"
	"github.com/quickrecap/recap-pipeline/internal/watcher"
	"github.com/quickrecap/recap-pipeline/pkg/executor"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfgPath := os.Getenv("RECAP_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Media Summarization Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Store driver: %s", cfg.Store.Driver)
	log.Info(ctx, "Storage driver: %s", cfg.Storage.Driver)
	log.Info(ctx, "Max concurrent runs: %d", cfg.Pipeline.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	recordStore, err := newStore(ctx, cfg)
	if err != nil {
		log.Error(ctx, "Failed to connect record store: %v", err)
		os.Exit(1)
	}
	defer recordStore.Close(ctx)

	blobs, err := newBlobStore(ctx, cfg)
	if err != nil {
		log.Error(ctx, "Failed to create blob store: %v", err)
		os.Exit(1)
	}

	deps := pipeline.Deps{
		Store:      recordStore,
		Blobs:      blobs,
		Transcoder: transcode.New(executor.New(), log, cfg.Pipeline.TranscodeTimeout.Std()),
		Transcriber: transcriber.New(
			cfg.Transcriber.BaseURL,
			cfg.Transcriber.Language,
			cfg.Transcriber.PollInterval.Std(),
			cfg.Transcriber.Timeout.Std(),
			log,
		),
	}

	if cfg.Paths.Artifacts != "" {
		writer, err := report.NewDocxWriter(cfg.Paths.Artifacts)
		if err != nil {
			log.Error(ctx, "Failed to create artifact writer: %v", err)
			os.Exit(1)
		}
		deps.Report = writer
	}

	pipe := pipeline.New(cfg.Pipeline, cfg.Paths, deps, log)

	w, err := watcher.New(cfg.Paths.Events, pipe, log, cfg.Pipeline.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Pipeline is ready. Watching: %s", cfg.Paths.Events)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

func newStore(ctx context.Context, cfg *config.Config) (store.RecordStore, error) {
	switch cfg.Store.Driver {
	case "postgres":
		return store.NewPostgresStore(ctx, store.PostgresConfig{DSN: cfg.Store.DSN})
	case "mongo":
		return store.NewMongoStore(ctx, cfg.Store.DSN, cfg.Store.Database, cfg.Store.Collection)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blobstore.BlobStore, error) {
	switch cfg.Storage.Driver {
	case "gcs":
		var opts []blobstore.GCSOption
		if cfg.Storage.CredentialsPath != "" {
			opts = append(opts, blobstore.WithCredentialsFile(cfg.Storage.CredentialsPath))
		}
		return blobstore.NewGCSStore(ctx, cfg.Storage.Bucket, opts...)
	case "local":
		return blobstore.NewLocalStore(cfg.Storage.LocalDir)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Events,
		cfg.Paths.Temp,
	}
	if cfg.Paths.Artifacts != "" {
		dirs = append(dirs, cfg.Paths.Artifacts)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
