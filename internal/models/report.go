package models

// Report is the terminal artifact of one run, written once and never
// mutated. BestItem is nil when the run found no complete products;
// it serializes as JSON null.
type Report struct {
	Title    string          `json:"title"`
	Date     string          `json:"date"`
	BestItem *ProductRecord  `json:"best_item"`
	Currency string          `json:"currency"`
	Filters  PriceFilter     `json:"filters"`
	BaseLink string          `json:"base_link"`
	Products []ProductRecord `json:"products"`
}

// ReportDateFormat renders wall-clock time as DD/MM/YYYY HHMMSS.
const ReportDateFormat = "02/01/2006 150405"
