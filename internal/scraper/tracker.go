package scraper

import (
	"context"
	"log/slog"

	"github.com/pricehunt/amazon-price-tracker/internal/models"
)

// Tracker sequences discovery and collection for one run. It borrows
// the Session; opening and closing it stays with the caller so
// release is guaranteed on every exit path.
type Tracker struct {
	discoverer *LinkDiscoverer
	collector  *Collector
	logger     *slog.Logger
}

func NewTracker(discoverer *LinkDiscoverer, collector *Collector, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		discoverer: discoverer,
		collector:  collector,
		logger:     logger.With("component", "tracker"),
	}
}

// Run returns the complete product records for the search, or an
// empty slice when the search found nothing. An empty result is not
// an error; the caller still gets its report.
func (t *Tracker) Run(ctx context.Context, term string, filter models.PriceFilter) ([]models.ProductRecord, error) {
	asins, err := t.discoverer.Discover(ctx, term, filter)
	if err != nil {
		return nil, err
	}
	if len(asins) == 0 {
		t.logger.Info("no products found, stopping")
		return []models.ProductRecord{}, nil
	}

	t.logger.Info("got links to products", "count", len(asins))
	return t.collector.Collect(ctx, asins)
}
