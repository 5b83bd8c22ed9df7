package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceFilterQueryFragment(t *testing.T) {
	f := PriceFilter{Min: 275, Max: 650}
	assert.Equal(t, "&rh=p_36%3A27500-65000", f.QueryFragment())
}

func TestReportSerializesFixedShape(t *testing.T) {
	rep := Report{
		Title:    "ps4",
		Date:     "30/08/2026 142512",
		BestItem: nil,
		Currency: "$",
		Filters:  PriceFilter{Min: 275, Max: 650},
		BaseLink: "https://www.amazon.com",
		Products: []ProductRecord{},
	}

	data, err := json.Marshal(rep)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{"title", "date", "best_item", "currency", "filters", "base_link", "products"} {
		assert.Contains(t, raw, key)
	}
	assert.Equal(t, "null", string(raw["best_item"]))
	assert.Equal(t, "[]", string(raw["products"]))
}

func TestProductRecordIsComplete(t *testing.T) {
	complete := ProductRecord{ASIN: "A1", URL: "u", Title: "t", Seller: "s", Price: 9.99}
	assert.True(t, complete.IsComplete())

	missingSeller := complete
	missingSeller.Seller = ""
	assert.False(t, missingSeller.IsComplete())

	zeroPrice := complete
	zeroPrice.Price = 0
	assert.False(t, zeroPrice.IsComplete())
}
