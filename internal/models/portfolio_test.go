package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	entry := PortfolioEntry{PurchasePrice: 100}

	assert.InDelta(t, 50.0, entry.PercentChange(150), 0.0001)
	assert.InDelta(t, -25.0, entry.PercentChange(75), 0.0001)
}

func TestPercentChangeZeroWhenPurchasePriceMissing(t *testing.T) {
	entry := PortfolioEntry{PurchasePrice: 0}

	assert.Equal(t, 0.0, entry.PercentChange(150),
		"sin precio de compra el cambio porcentual es 0, no una división por cero")
}

func TestBuildPortfolioSummary(t *testing.T) {
	entries := []PortfolioEntry{
		{ID: "1", CoinID: "bitcoin", Amount: 2, PurchasePrice: 40000},
		{ID: "2", CoinID: "ethereum", Amount: 10, PurchasePrice: 2000},
		// Segunda entrada de la misma moneda: se suma, no se deduplica
		{ID: "3", CoinID: "bitcoin", Amount: 1, PurchasePrice: 45000},
	}
	prices := map[string]float64{
		"bitcoin":  50000,
		"ethereum": 3000,
	}

	summary := BuildPortfolioSummary(entries, prices, "usd")

	// valor total = 2*50000 + 10*3000 + 1*50000 = 180000
	assert.InDelta(t, 180000.0, summary.TotalValue, 0.0001)
	// invertido = 2*40000 + 10*2000 + 1*45000 = 145000
	assert.InDelta(t, 145000.0, summary.TotalInvested, 0.0001)
	assert.InDelta(t, 35000.0, summary.Profit, 0.0001)
	assert.InDelta(t, 35000.0/145000.0*100, summary.ProfitPercentage, 0.0001)
	assert.Equal(t, "usd", summary.VsCurrency)

	require.Len(t, summary.Entries, 3)
	assert.InDelta(t, 25.0, summary.Entries[0].PercentChange, 0.0001)
	assert.InDelta(t, 50.0, summary.Entries[1].PercentChange, 0.0001)
}

func TestBuildPortfolioSummaryUnknownCoinValuesZero(t *testing.T) {
	entries := []PortfolioEntry{
		{ID: "1", CoinID: "moneda-rara", Amount: 5, PurchasePrice: 10},
	}

	summary := BuildPortfolioSummary(entries, map[string]float64{}, "usd")

	assert.Equal(t, 0.0, summary.TotalValue)
	assert.InDelta(t, 50.0, summary.TotalInvested, 0.0001)
	require.Len(t, summary.Entries, 1)
	assert.Equal(t, 0.0, summary.Entries[0].CurrentPrice)
}

func TestBuildPortfolioSummaryEmpty(t *testing.T) {
	summary := BuildPortfolioSummary(nil, nil, "eur")

	assert.Equal(t, 0.0, summary.TotalValue)
	assert.Equal(t, 0.0, summary.ProfitPercentage)
	assert.Equal(t, "eur", summary.VsCurrency)
	assert.NotNil(t, summary.Entries)
}
