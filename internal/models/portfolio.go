package models

import "time"

// PortfolioEntry representa una posición del portafolio del usuario.
// Se permiten múltiples entradas para la misma moneda (coin_id no es único);
// los consumidores deben sumarlas.
type PortfolioEntry struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	CoinID        string    `json:"coinId" binding:"required"`
	Amount        float64   `json:"amount" binding:"gte=0"`
	PurchasePrice float64   `json:"purchasePrice" binding:"gte=0"`
	PurchaseDate  string    `json:"purchaseDate"`
	CreatedAt     time.Time `json:"created_at"`
}

// PortfolioEntryUpdate contiene los campos modificables de una entrada.
// Los punteros distinguen "no enviado" de "cero"; el ID nunca cambia.
type PortfolioEntryUpdate struct {
	CoinID        *string  `json:"coinId"`
	Amount        *float64 `json:"amount"`
	PurchasePrice *float64 `json:"purchasePrice"`
	PurchaseDate  *string  `json:"purchaseDate"`
}

// PortfolioEntryView es una entrada enriquecida con el precio actual de mercado.
type PortfolioEntryView struct {
	PortfolioEntry
	CurrentPrice  float64 `json:"current_price"`
	CurrentValue  float64 `json:"current_value"`
	PercentChange float64 `json:"percent_change"`
}

// PortfolioSummary resume la valuación del portafolio completo.
type PortfolioSummary struct {
	TotalValue       float64              `json:"total_value"`
	TotalInvested    float64              `json:"total_invested"`
	Profit           float64              `json:"profit"`
	ProfitPercentage float64              `json:"profit_percentage"`
	VsCurrency       string               `json:"vs_currency"`
	Entries          []PortfolioEntryView `json:"entries"`
}

// PercentChange calcula el cambio porcentual de una entrada contra el precio
// actual. Devuelve 0 si el precio de compra es 0 o no fue registrado.
func (e PortfolioEntry) PercentChange(currentPrice float64) float64 {
	if e.PurchasePrice <= 0 {
		return 0
	}
	return ((currentPrice - e.PurchasePrice) / e.PurchasePrice) * 100
}

// BuildPortfolioSummary calcula la valuación del portafolio contra los
// precios actuales. Una moneda sin precio conocido vale 0 en el total.
// valor total = Σ(amount × precio actual); invertido = Σ(amount × precio de compra).
func BuildPortfolioSummary(entries []PortfolioEntry, prices map[string]float64, vsCurrency string) PortfolioSummary {
	summary := PortfolioSummary{
		VsCurrency: vsCurrency,
		Entries:    []PortfolioEntryView{},
	}

	for _, entry := range entries {
		currentPrice := prices[entry.CoinID]
		currentValue := entry.Amount * currentPrice

		summary.TotalValue += currentValue
		summary.TotalInvested += entry.Amount * entry.PurchasePrice
		summary.Entries = append(summary.Entries, PortfolioEntryView{
			PortfolioEntry: entry,
			CurrentPrice:   currentPrice,
			CurrentValue:   currentValue,
			PercentChange:  entry.PercentChange(currentPrice),
		})
	}

	summary.Profit = summary.TotalValue - summary.TotalInvested
	if summary.TotalInvested > 0 {
		summary.ProfitPercentage = (summary.Profit / summary.TotalInvested) * 100
	}

	return summary
}
