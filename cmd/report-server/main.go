package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pricehunt/amazon-price-tracker/internal/api"
	"github.com/pricehunt/amazon-price-tracker/internal/config"
	"github.com/pricehunt/amazon-price-tracker/internal/logging"
	"github.com/pricehunt/amazon-price-tracker/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(logger)

	store, err := report.NewStore(cfg.Report.OutputDir)
	if err != nil {
		log.Fatalf("Failed to open report store: %v", err)
	}

	handlers := api.NewHandlers(store, logger)
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handlers.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
		}
	}()

	logger.Info("serving reports", "addr", cfg.Server.Addr, "dir", cfg.Report.OutputDir)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
