package models

import "fmt"

// ProductRecord is one fully extracted product. A record only exists
// when title, seller and price were all read successfully; partial
// extractions are dropped by the collector, never emitted with empty
// fields.
type ProductRecord struct {
	ASIN   string  `json:"asin"`
	URL    string  `json:"url"`
	Title  string  `json:"title"`
	Seller string  `json:"seller"`
	Price  float64 `json:"price"`
}

func (p *ProductRecord) IsComplete() bool {
	return p.ASIN != "" && p.Title != "" && p.Seller != "" && p.Price > 0
}

// PriceFilter is the inclusive price range applied to search results.
type PriceFilter struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// QueryFragment renders the filter as Amazon's p_36 query-string
// fragment. The bounds are whole currency units; Amazon expects them
// in hundredths, hence the appended "00".
func (f PriceFilter) QueryFragment() string {
	return fmt.Sprintf("&rh=p_36%%3A%d00-%d00", f.Min, f.Max)
}
