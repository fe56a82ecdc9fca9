package models

import "time"

// WatchlistItem es un snapshot de MarketCoin guardado en la watchlist del
// usuario. El id de la moneda es único dentro de la lista (semántica de
// conjunto); el orden de inserción se preserva.
type WatchlistItem struct {
	UserID  string     `json:"-"`
	Coin    MarketCoin `json:"coin"`
	AddedAt time.Time  `json:"added_at"`
}
