package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductPriceIsJSONNumber(t *testing.T) {
	p := Product{
		ID:          1,
		Name:        "Pen",
		Description: "Blue ink",
		Price:       decimal.RequireFromString("1.50"),
		Category:    "Office",
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Pen","description":"Blue ink","price":1.5,"category":"Office"}`, string(data))
}

func TestProductAcceptsNumericAndQuotedPrice(t *testing.T) {
	for _, body := range []string{
		`{"name":"Pen","price":1.50}`,
		`{"name":"Pen","price":"1.50"}`,
	} {
		var p Product
		require.NoError(t, json.Unmarshal([]byte(body), &p), body)
		assert.True(t, p.Price.Equal(decimal.RequireFromString("1.5")), body)
		assert.Zero(t, p.ID)
	}
}

func TestImportingModelsUnquotesEveryDecimal(t *testing.T) {
	data, err := json.Marshal(map[string]decimal.Decimal{"total": decimal.RequireFromString("3.25")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":3.25}`, string(data))
}
