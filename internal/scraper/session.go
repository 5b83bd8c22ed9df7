package scraper

import (
	"context"
	"errors"
	"time"
)

var ErrLayoutMismatch = errors.New("result list layout mismatch")

// Session is the navigation capability the scraper depends on. The
// production implementation is internal/browser; tests substitute a
// fake serving canned pages.
type Session interface {
	Navigate(ctx context.Context, url string) error
	CurrentURL() string
	Content() (string, error)
	SubmitSearch(ctx context.Context, selector, query string) error
	WaitVisible(ctx context.Context, selector string, timeout time.Duration) error
	Settle(ctx context.Context, d time.Duration) error
}

// Options holds the per-run scraper knobs shared by the discoverer
// and the collector.
type Options struct {
	BaseURL        string
	CurrencySymbol string
	SettleDelay    time.Duration
	ResultTimeout  time.Duration
}
