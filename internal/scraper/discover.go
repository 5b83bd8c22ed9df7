package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pricehunt/amazon-price-tracker/internal/models"
)

const (
	searchBoxSelector  = "#twotabsearchtextbox"
	resultListSelector = ".s-result-list"
	resultLinkSelector = "h2 a"
)

// LinkDiscoverer turns a search term into a list of ASINs by running
// the search, applying the price filter, and scraping the result-list
// anchors.
type LinkDiscoverer struct {
	session Session
	opts    Options
	logger  *slog.Logger
}

func NewLinkDiscoverer(session Session, opts Options, logger *slog.Logger) *LinkDiscoverer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LinkDiscoverer{
		session: session,
		opts:    opts,
		logger:  logger.With("component", "discoverer"),
	}
}

// Discover never fails the caller: layout drift, selector mismatch
// and zero results all degrade to an empty slice with a diagnostic.
func (d *LinkDiscoverer) Discover(ctx context.Context, term string, filter models.PriceFilter) ([]string, error) {
	d.logger.Info("searching", "term", term, "min", filter.Min, "max", filter.Max)

	if err := d.session.Navigate(ctx, d.opts.BaseURL); err != nil {
		return nil, fmt.Errorf("failed to open base page: %w", err)
	}
	if err := d.session.SubmitSearch(ctx, searchBoxSelector, term); err != nil {
		return nil, fmt.Errorf("failed to submit search: %w", err)
	}
	if err := d.session.WaitVisible(ctx, resultListSelector, d.opts.ResultTimeout); err != nil {
		d.logger.Warn("no result list after search", "error", err)
		return nil, nil
	}

	filteredURL := d.session.CurrentURL() + filter.QueryFragment()
	if err := d.session.Navigate(ctx, filteredURL); err != nil {
		return nil, fmt.Errorf("failed to apply price filter: %w", err)
	}
	if err := d.session.WaitVisible(ctx, resultListSelector, d.opts.ResultTimeout); err != nil {
		d.logger.Warn("no result list after filtering", "error", err)
		return nil, nil
	}

	html, err := d.session.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to read results page: %w", err)
	}

	asins, err := extractASINs(html)
	if err != nil {
		d.logger.Warn("didn't get any products", "error", err)
		return nil, nil
	}

	d.logger.Info("discovered products", "count", len(asins))
	return asins, nil
}

// extractASINs scrapes product anchors out of the results page. The
// first result-list container on the page is a promotional block, so
// products are read from the second.
func extractASINs(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse results page: %w", err)
	}

	lists := doc.Find(resultListSelector)
	if lists.Length() < 2 {
		return nil, fmt.Errorf("%w: found %d result lists, need 2", ErrLayoutMismatch, lists.Length())
	}

	var asins []string
	seen := make(map[string]bool)
	lists.Eq(1).Find(resultLinkSelector).Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		asin, ok := asinFromURL(href)
		if !ok || seen[asin] {
			return
		}
		seen[asin] = true
		asins = append(asins, asin)
	})

	if len(asins) == 0 {
		return nil, fmt.Errorf("%w: no product anchors in result list", ErrLayoutMismatch)
	}
	return asins, nil
}

// asinFromURL slices the product identifier out of a detail-page
// href: the segment between "/dp/" and the following "/ref" marker,
// or failing that the next path or query separator.
func asinFromURL(href string) (string, bool) {
	const marker = "/dp/"
	start := strings.Index(href, marker)
	if start < 0 {
		return "", false
	}
	rest := href[start+len(marker):]

	if end := strings.Index(rest, "/ref"); end >= 0 {
		rest = rest[:end]
	} else if end := strings.IndexAny(rest, "/?"); end >= 0 {
		rest = rest[:end]
	}

	if rest == "" {
		return "", false
	}
	return rest, true
}
