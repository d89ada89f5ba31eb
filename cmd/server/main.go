package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/luoxb/novelshelf/internal/api"
	"github.com/luoxb/novelshelf/internal/config"
	"github.com/luoxb/novelshelf/internal/library"
	"github.com/luoxb/novelshelf/internal/parser"
	"github.com/luoxb/novelshelf/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := os.MkdirAll(cfg.LibraryDir, 0o755); err != nil {
		log.Error("create library dir", "error", err)
		os.Exit(1)
	}

	cache, err := store.NewRecordCache(filepath.Join(cfg.DataDir, "records"))
	if err != nil {
		log.Error("init record cache", "error", err)
		os.Exit(1)
	}
	progress, err := store.NewProgressStore(filepath.Join(cfg.DataDir, "progress.json"))
	if err != nil {
		log.Error("init progress store", "error", err)
		os.Exit(1)
	}

	p := parser.New(parser.Options{
		ChunkThreshold: cfg.ChunkThreshold,
		ValidateLines:  cfg.ValidateLines,
		SnippetRadius:  cfg.SnippetRadius,
	})

	lib := library.New(cfg.LibraryDir, cfg.ScanWorkers, p, cache, log)
	if _, err := lib.Scan(ctx); err != nil {
		log.Error("initial library scan failed", "error", err)
		os.Exit(1)
	}

	srv := api.NewServer(lib, p, progress, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting novelshelf", "port", cfg.Port, "library", cfg.LibraryDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
