package scraper

import (
	"context"
	"testing"
	"time"

	"github.com/pricehunt/amazon-price-tracker/internal/models"
	"github.com/pricehunt/amazon-price-tracker/internal/parser"
	"github.com/pricehunt/amazon-price-tracker/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://www.amazon.com"

func productHTML(title, seller, price string) string {
	page := `<!DOCTYPE html><html><body>`
	if title != "" {
		page += `<span id="productTitle">` + title + `</span>`
	}
	if seller != "" {
		page += `<a id="bylineInfo">` + seller + `</a>`
	}
	if price != "" {
		page += `<span id="priceblock_ourprice">` + price + `</span>`
	}
	return page + `</body></html>`
}

func newTestCollector(session Session) *Collector {
	opts := Options{BaseURL: baseURL, CurrencySymbol: "$", ResultTimeout: time.Second}
	extractor := parser.NewFieldExtractor("$", nil)
	return NewCollector(session, extractor, nil, opts, nil)
}

func TestCollectDropsIncompleteProducts(t *testing.T) {
	session := &fakeSession{
		pages: map[string]string{
			baseURL + "/dp/A1": productHTML("Widget", "Acme", "$10\n00"),
			baseURL + "/dp/A2": productHTML("Gadget", "", "$5\n00"),
			baseURL + "/dp/A3": productHTML("", "Acme", "$7.50"),
			baseURL + "/dp/A4": productHTML("Doodad", "Acme", ""),
		},
	}

	c := newTestCollector(session)

	products, err := c.Collect(context.Background(), []string{"A1", "A2", "A3", "A4"})
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "A1", products[0].ASIN)
	assert.Equal(t, baseURL+"/dp/A1", products[0].URL)
	assert.Equal(t, "Widget", products[0].Title)
	assert.Equal(t, "Acme", products[0].Seller)
	assert.Equal(t, 10.00, products[0].Price)
}

func TestCollectNeverEmitsPartialRecords(t *testing.T) {
	session := &fakeSession{
		pages: map[string]string{
			baseURL + "/dp/A1": productHTML("Alpha", "SellerA", "$30"),
			baseURL + "/dp/A2": productHTML("Beta", "", "$20"),
			baseURL + "/dp/A3": productHTML("Gamma", "SellerC", "$10"),
		},
	}

	c := newTestCollector(session)

	products, err := c.Collect(context.Background(), []string{"A1", "A2", "A3"})
	require.NoError(t, err)

	for _, p := range products {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Seller)
		assert.Greater(t, p.Price, 0.0)
	}
}

func TestCollectPreservesInputOrder(t *testing.T) {
	session := &fakeSession{
		pages: map[string]string{
			baseURL + "/dp/A1": productHTML("First", "S1", "$30"),
			baseURL + "/dp/A2": productHTML("Second", "", "$20"),
			baseURL + "/dp/A3": productHTML("Third", "S3", "$10"),
			baseURL + "/dp/A4": productHTML("Fourth", "S4", "$40"),
		},
	}

	c := newTestCollector(session)

	products, err := c.Collect(context.Background(), []string{"A1", "A2", "A3", "A4"})
	require.NoError(t, err)

	require.Len(t, products, 3)
	assert.Equal(t, []string{"A1", "A3", "A4"}, []string{products[0].ASIN, products[1].ASIN, products[2].ASIN})
}

func TestCollectSkipsUnloadablePages(t *testing.T) {
	// A2 has no page behind it; reading its content fails and the
	// product is skipped, not the run.
	session := &fakeSession{
		pages: map[string]string{
			baseURL + "/dp/A1": productHTML("First", "S1", "$30"),
		},
	}

	c := newTestCollector(session)

	products, err := c.Collect(context.Background(), []string{"A1", "A2"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "A1", products[0].ASIN)
}

func TestCollectStopsOnCancelledContext(t *testing.T) {
	session := &fakeSession{
		pages: map[string]string{
			baseURL + "/dp/A1": productHTML("First", "S1", "$30"),
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestCollector(session)

	products, err := c.Collect(ctx, []string{"A1"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, products)
}

func TestEndToEndScenario(t *testing.T) {
	session := &fakeSession{
		pages: map[string]string{
			baseURL + "/dp/A1": productHTML("Widget", "Acme", "$10\n00"),
			baseURL + "/dp/A2": productHTML("Gadget", "", "$5\n00"),
		},
	}

	c := newTestCollector(session)

	products, err := c.Collect(context.Background(), []string{"A1", "A2"})
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, "A1", products[0].ASIN)
	assert.Equal(t, 10.00, products[0].Price)

	rep := report.Build("ps4", products, report.Metadata{
		Currency: "$",
		Filters:  models.PriceFilter{Min: 5, Max: 15},
		BaseLink: baseURL,
	})

	require.NotNil(t, rep.BestItem)
	assert.Equal(t, products[0], *rep.BestItem)
}
