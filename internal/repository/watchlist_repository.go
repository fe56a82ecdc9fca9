package repository

import (
	"database/sql"
	"encoding/json"
	"log"
	"time"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
)

// WatchlistRepository maneja la lista de seguimiento del usuario. La moneda
// se guarda como snapshot JSON; el id de moneda es único por usuario
// (semántica de conjunto) y el orden de inserción se preserva.
type WatchlistRepository struct {
	db *sql.DB
}

func NewWatchlistRepository(db *sql.DB) *WatchlistRepository {
	return &WatchlistRepository{
		db: db,
	}
}

// AddCoin agrega una moneda a la watchlist. Si ya está, no hace nada
// (la clave primaria user_id+coin_id garantiza la unicidad).
func (r *WatchlistRepository) AddCoin(userID string, coin models.MarketCoin) error {
	coinData, err := json.Marshal(coin)
	if err != nil {
		return err
	}

	query := `
		INSERT OR IGNORE INTO watchlist_items (user_id, coin_id, coin_data, added_at)
		VALUES (?, ?, ?, ?)`

	_, err = r.db.Exec(query, userID, coin.ID, string(coinData), time.Now())
	return err
}

// GetUserWatchlist devuelve los snapshots guardados en orden de inserción.
// Un snapshot corrupto se omite en vez de fallar la carga completa.
func (r *WatchlistRepository) GetUserWatchlist(userID string) ([]models.WatchlistItem, error) {
	items := []models.WatchlistItem{}
	query := `
		SELECT coin_id, coin_data, added_at
		FROM watchlist_items
		WHERE user_id = ?
		ORDER BY added_at ASC, coin_id ASC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var coinID, coinData string
		var addedAt time.Time
		if err := rows.Scan(&coinID, &coinData, &addedAt); err != nil {
			return nil, err
		}

		var coin models.MarketCoin
		if err := json.Unmarshal([]byte(coinData), &coin); err != nil {
			// Dato corrupto: se degrada omitiendo la entrada
			log.Printf("Snapshot de watchlist corrupto para %s, se omite: %v", coinID, err)
			continue
		}

		items = append(items, models.WatchlistItem{
			UserID:  userID,
			Coin:    coin,
			AddedAt: addedAt,
		})
	}

	return items, rows.Err()
}

// HasCoin indica si la moneda ya está en la watchlist del usuario.
func (r *WatchlistRepository) HasCoin(userID, coinID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM watchlist_items WHERE user_id = ? AND coin_id = ?`

	err := r.db.QueryRow(query, userID, coinID).Scan(&count)
	return count > 0, err
}

// RemoveCoin quita la moneda de la watchlist. Si no está, no hace nada.
func (r *WatchlistRepository) RemoveCoin(userID, coinID string) error {
	query := `DELETE FROM watchlist_items WHERE user_id = ? AND coin_id = ?`

	_, err := r.db.Exec(query, userID, coinID)
	return err
}
