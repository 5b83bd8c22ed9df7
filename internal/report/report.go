package report

import (
	"log/slog"
	"sort"
	"time"

	"github.com/pricehunt/amazon-price-tracker/internal/models"
)

// Metadata carries the run parameters echoed into the report.
type Metadata struct {
	Currency string
	Filters  models.PriceFilter
	BaseLink string
}

// Build assembles the report for one run. It always succeeds: an
// empty product list yields best_item null and products [], not an
// error.
func Build(title string, products []models.ProductRecord, meta Metadata) models.Report {
	if products == nil {
		products = []models.ProductRecord{}
	}
	return models.Report{
		Title:    title,
		Date:     time.Now().Format(models.ReportDateFormat),
		BestItem: bestItem(products),
		Currency: meta.Currency,
		Filters:  meta.Filters,
		BaseLink: meta.BaseLink,
		Products: products,
	}
}

// bestItem picks the minimum-price record. The sort is stable so
// price ties resolve to the first occurrence in the input.
func bestItem(products []models.ProductRecord) *models.ProductRecord {
	if len(products) == 0 {
		slog.Warn("no products to rank, best item unset")
		return nil
	}

	ranked := make([]models.ProductRecord, len(products))
	copy(ranked, products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Price < ranked[j].Price
	})

	best := ranked[0]
	return &best
}
