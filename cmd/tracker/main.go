package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/pricehunt/amazon-price-tracker/internal/browser"
	"github.com/pricehunt/amazon-price-tracker/internal/config"
	"github.com/pricehunt/amazon-price-tracker/internal/logging"
	"github.com/pricehunt/amazon-price-tracker/internal/models"
	"github.com/pricehunt/amazon-price-tracker/internal/parser"
	"github.com/pricehunt/amazon-price-tracker/internal/ratelimit"
	"github.com/pricehunt/amazon-price-tracker/internal/report"
	"github.com/pricehunt/amazon-price-tracker/internal/scraper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logging.New(cfg.Logging.Level, cfg.Logging.Format).With("run_id", uuid.NewString())
	slog.SetDefault(logger)
	logger.Info("starting price tracker", "term", cfg.Search.Term)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("shutdown signal received")
		cancel()
	}()

	store, err := report.NewStore(cfg.Report.OutputDir)
	if err != nil {
		log.Fatalf("Failed to open report store: %v", err)
	}

	session, err := browser.New(&browser.Options{
		Headless:       cfg.Browser.Headless,
		Timeout:        cfg.Browser.Timeout,
		UserAgent:      browser.DefaultOptions().UserAgent,
		ViewportWidth:  cfg.Browser.ViewportWidth,
		ViewportHeight: cfg.Browser.ViewportHeight,
		Locale:         cfg.Browser.Locale,
		TimezoneID:     cfg.Browser.TimezoneID,
	})
	if err != nil {
		log.Fatalf("Failed to start browser: %v", err)
	}
	defer func() {
		if err := session.Close(); err != nil {
			logger.Error("failed to close browser", "error", err)
		}
	}()

	opts := scraper.Options{
		BaseURL:        cfg.Search.BaseURL,
		CurrencySymbol: cfg.Search.CurrencySymbol,
		SettleDelay:    cfg.Scraper.SettleDelay,
		ResultTimeout:  cfg.Scraper.ResultTimeout,
	}
	filter := models.PriceFilter{Min: cfg.Search.PriceMin, Max: cfg.Search.PriceMax}

	extractor := parser.NewFieldExtractor(cfg.Search.CurrencySymbol, logger)
	limiter := ratelimit.New(cfg.Scraper.RateLimitMin, cfg.Scraper.RateLimitMax)
	discoverer := scraper.NewLinkDiscoverer(session, opts, logger)
	collector := scraper.NewCollector(session, extractor, limiter, opts, logger)
	tracker := scraper.NewTracker(discoverer, collector, logger)

	products, err := tracker.Run(ctx, cfg.Search.Term, filter)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	rep := report.Build(cfg.Search.Term, products, report.Metadata{
		Currency: cfg.Search.CurrencySymbol,
		Filters:  filter,
		BaseLink: cfg.Search.BaseURL,
	})

	path, err := store.Write(rep)
	if err != nil {
		logger.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	logger.Info("report written", "path", path, "products", len(rep.Products))
}
