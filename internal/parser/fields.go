package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	titleSelector        = "#productTitle"
	sellerSelector       = "#bylineInfo"
	priceSelector        = "#priceblock_ourprice"
	availabilitySelector = "#availability"
	dealPriceSelector    = "#priceblock_dealprice"
	genericPriceSelector = ".a-color-price"
)

// FieldExtractor reads title, seller and price out of a product
// detail page. It operates on a page snapshot (HTML), not on the live
// browser; navigation is the collector's job.
type FieldExtractor struct {
	currencySymbol string
	logger         *slog.Logger
}

func NewFieldExtractor(currencySymbol string, logger *slog.Logger) *FieldExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FieldExtractor{
		currencySymbol: currencySymbol,
		logger:         logger.With("component", "extractor"),
	}
}

// Extract pulls the three fields independently. A missing field is
// reported as nil in the result, never as an error; one field failing
// does not block the others.
func (e *FieldExtractor) Extract(html string) (Fields, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return Fields{}, fmt.Errorf("failed to parse page: %w", err)
	}

	var fields Fields

	if title, err := elementText(doc, titleSelector); err == nil {
		fields.Title = &title
	} else {
		e.logger.Warn("title not found")
	}

	if seller, err := elementText(doc, sellerSelector); err == nil {
		fields.Seller = &seller
	} else {
		e.logger.Warn("seller not found")
	}

	if price, err := e.extractPrice(doc); err == nil {
		fields.Price = &price
	} else {
		e.logger.Warn("price not found", "error", err)
	}

	return fields, nil
}

// priceStrategy produces a raw price string from the page, or reports
// that it cannot. Strategies are tried in order, first success wins.
type priceStrategy struct {
	name              string
	needsAvailability bool
	extract           func(doc *goquery.Document) (string, error)
}

func (e *FieldExtractor) priceStrategies() []priceStrategy {
	return []priceStrategy{
		{
			name: "primary",
			extract: func(doc *goquery.Document) (string, error) {
				return elementText(doc, priceSelector)
			},
		},
		{
			name:              "deal",
			needsAvailability: true,
			extract: func(doc *goquery.Document) (string, error) {
				return e.textFromSymbol(doc, dealPriceSelector)
			},
		},
		{
			name:              "generic",
			needsAvailability: true,
			extract: func(doc *goquery.Document) (string, error) {
				return e.textFromSymbol(doc, genericPriceSelector)
			},
		},
	}
}

// extractPrice walks the fallback chain. The availability gate is
// read once and shared by every strategy that requires it.
func (e *FieldExtractor) extractPrice(doc *goquery.Document) (float64, error) {
	available := e.isAvailable(doc)

	var lastErr error
	for _, strategy := range e.priceStrategies() {
		if strategy.needsAvailability && !available {
			continue
		}
		raw, err := strategy.extract(doc)
		if err != nil {
			lastErr = err
			continue
		}
		price, err := ParsePrice(raw, e.currencySymbol)
		if err != nil {
			e.logger.Debug("price strategy failed to parse", "strategy", strategy.name, "raw", raw)
			lastErr = err
			continue
		}
		return price, nil
	}

	if lastErr == nil {
		lastErr = ErrElementNotFound
	}
	return 0, fmt.Errorf("all price strategies exhausted: %w", lastErr)
}

func (e *FieldExtractor) isAvailable(doc *goquery.Document) bool {
	text, err := elementText(doc, availabilitySelector)
	if err != nil {
		return false
	}
	return strings.Contains(text, "Available") || strings.Contains(text, "In Stock")
}

// textFromSymbol reads an element and slices its text from the first
// occurrence of the currency symbol, dropping any label prefix.
func (e *FieldExtractor) textFromSymbol(doc *goquery.Document, selector string) (string, error) {
	text, err := elementText(doc, selector)
	if err != nil {
		return "", err
	}
	idx := strings.Index(text, e.currencySymbol)
	if idx < 0 {
		return "", fmt.Errorf("%w: no %q in %q", ErrUnparsablePrice, e.currencySymbol, text)
	}
	return text[idx:], nil
}

func elementText(doc *goquery.Document, selector string) (string, error) {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("%w: %s", ErrElementNotFound, selector)
	}
	text := strings.TrimSpace(sel.Text())
	if text == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrElementNotFound, selector)
	}
	return text, nil
}
