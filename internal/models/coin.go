package models

import "encoding/json"

// MarketCoin representa una criptomoneda tal como la devuelve CoinGecko en
// /coins/markets. Los campos opcionales que la API omite o devuelve como null
// quedan en su valor cero (ej: price_change_percentage_24h ausente => 0).
type MarketCoin struct {
	ID                       string  `json:"id"`
	Symbol                   string  `json:"symbol"`
	Name                     string  `json:"name"`
	Image                    string  `json:"image"`
	CurrentPrice             float64 `json:"current_price"`
	MarketCap                float64 `json:"market_cap"`
	TotalVolume              float64 `json:"total_volume"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	MarketCapRank            int     `json:"market_cap_rank"`
}

func UnmarshalMarketCoins(data []byte) ([]MarketCoin, error) {
	var coins []MarketCoin
	err := json.Unmarshal(data, &coins)
	return coins, err
}

// CoinDetail contiene el detalle de una moneda (/coins/{id}). Los precios
// dentro de market_data vienen indexados por código de moneda (usd, eur, ...).
type CoinDetail struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	MarketCapRank int    `json:"market_cap_rank"`
	Image         struct {
		Thumb string `json:"thumb"`
		Small string `json:"small"`
		Large string `json:"large"`
	} `json:"image"`
	Description struct {
		En string `json:"en"`
	} `json:"description"`
	MarketData struct {
		CurrentPrice             map[string]float64 `json:"current_price"`
		MarketCap                map[string]float64 `json:"market_cap"`
		TotalVolume              map[string]float64 `json:"total_volume"`
		High24h                  map[string]float64 `json:"high_24h"`
		Low24h                   map[string]float64 `json:"low_24h"`
		PriceChangePercentage24h float64            `json:"price_change_percentage_24h"`
		CirculatingSupply        float64            `json:"circulating_supply"`
		TotalSupply              float64            `json:"total_supply"`
	} `json:"market_data"`
}

// MarketChart contiene el historial de precios (/coins/{id}/market_chart).
// Cada punto es [timestampMs, precio].
type MarketChart struct {
	Prices       [][]float64 `json:"prices"`
	MarketCaps   [][]float64 `json:"market_caps"`
	TotalVolumes [][]float64 `json:"total_volumes"`
}

// SearchResult es la respuesta de /search?query=
type SearchResult struct {
	Coins []SearchCoin `json:"coins"`
}

type SearchCoin struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Symbol        string `json:"symbol"`
	Thumb         string `json:"thumb"`
	Large         string `json:"large"`
	MarketCapRank int    `json:"market_cap_rank"`
}
