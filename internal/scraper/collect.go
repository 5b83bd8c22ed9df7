package scraper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pricehunt/amazon-price-tracker/internal/models"
	"github.com/pricehunt/amazon-price-tracker/internal/parser"
	"github.com/pricehunt/amazon-price-tracker/internal/ratelimit"
)

const priceBlockSelector = "#priceblock_ourprice, #availability"

// Collector loads each product page in turn and keeps the records
// whose title, seller and price were all extracted. Strictly
// sequential: one page in flight, no retries, no revisits.
type Collector struct {
	session   Session
	extractor *parser.FieldExtractor
	limiter   *ratelimit.Limiter
	opts      Options
	logger    *slog.Logger
}

func NewCollector(session Session, extractor *parser.FieldExtractor, limiter *ratelimit.Limiter, opts Options, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		session:   session,
		extractor: extractor,
		limiter:   limiter,
		opts:      opts,
		logger:    logger.With("component", "collector"),
	}
}

// Collect preserves the input order among surviving records.
// Incomplete extractions are dropped, never emitted with empty
// fields. The attempted/emitted counts are logged so dropped products
// stay visible.
func (c *Collector) Collect(ctx context.Context, asins []string) ([]models.ProductRecord, error) {
	products := make([]models.ProductRecord, 0, len(asins))

	for _, asin := range asins {
		if err := ctx.Err(); err != nil {
			return products, err
		}

		record, err := c.collectOne(ctx, asin)
		if err != nil {
			c.logger.Warn("skipping product", "asin", asin, "error", err)
			continue
		}
		if record == nil {
			continue
		}
		products = append(products, *record)
	}

	c.logger.Info("collection finished", "attempted", len(asins), "emitted", len(products))
	return products, nil
}

func (c *Collector) collectOne(ctx context.Context, asin string) (*models.ProductRecord, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	url := c.ProductURL(asin)
	c.logger.Info("getting product data", "asin", asin, "url", url)

	if err := c.session.Navigate(ctx, url); err != nil {
		return nil, fmt.Errorf("failed to load product page: %w", err)
	}

	// The price block renders late on some listings; wait for it if
	// it shows up, settle regardless.
	if err := c.session.WaitVisible(ctx, priceBlockSelector, c.opts.ResultTimeout); err != nil {
		c.logger.Debug("price block never attached", "asin", asin)
	}
	if c.opts.SettleDelay > 0 {
		if err := c.session.Settle(ctx, c.opts.SettleDelay); err != nil {
			return nil, err
		}
	}

	html, err := c.session.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to read product page: %w", err)
	}

	fields, err := c.extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	if !fields.Complete() {
		c.logger.Warn("incomplete product dropped", "asin", asin,
			"hasTitle", fields.Title != nil,
			"hasSeller", fields.Seller != nil,
			"hasPrice", fields.Price != nil)
		return nil, nil
	}

	return &models.ProductRecord{
		ASIN:   asin,
		URL:    url,
		Title:  *fields.Title,
		Seller: *fields.Seller,
		Price:  *fields.Price,
	}, nil
}

// ProductURL builds the canonical detail-page URL for an ASIN.
func (c *Collector) ProductURL(asin string) string {
	return c.opts.BaseURL + "/dp/" + asin
}
