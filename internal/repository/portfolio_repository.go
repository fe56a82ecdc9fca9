package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
)

// PortfolioRepository maneja las entradas del portafolio del usuario.
// Cada mutación escribe directamente en la base; no hay escrituras parciales.
type PortfolioRepository struct {
	db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{
		db: db,
	}
}

// CreateEntry inserta una entrada nueva. Si no trae id se le asigna uno
// basado en el tiempo (suficiente como unicidad dentro de la sesión).
func (r *PortfolioRepository) CreateEntry(entry *models.PortfolioEntry) error {
	if entry.ID == "" {
		entry.ID = fmt.Sprintf("%d", time.Now().UnixNano())
	}

	query := `
		INSERT INTO portfolio_entries (id, user_id, coin_id, amount, purchase_price, purchase_date)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query, entry.ID, entry.UserID, entry.CoinID, entry.Amount, entry.PurchasePrice, entry.PurchaseDate)
	return err
}

// GetUserEntries devuelve las entradas del usuario en orden de creación.
// Siempre devuelve una lista (vacía si no hay entradas).
func (r *PortfolioRepository) GetUserEntries(userID string) ([]models.PortfolioEntry, error) {
	entries := []models.PortfolioEntry{}
	query := `
		SELECT id, user_id, coin_id, amount, purchase_price, COALESCE(purchase_date, ''), created_at
		FROM portfolio_entries
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.PortfolioEntry
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.CoinID,
			&entry.Amount,
			&entry.PurchasePrice,
			&entry.PurchaseDate,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *PortfolioRepository) GetEntry(userID, entryID string) (*models.PortfolioEntry, error) {
	entry := &models.PortfolioEntry{}
	query := `
		SELECT id, user_id, coin_id, amount, purchase_price, COALESCE(purchase_date, ''), created_at
		FROM portfolio_entries
		WHERE id = ? AND user_id = ?`

	err := r.db.QueryRow(query, entryID, userID).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.CoinID,
		&entry.Amount,
		&entry.PurchasePrice,
		&entry.PurchaseDate,
		&entry.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return entry, err
}

// UpdateEntry fusiona los campos enviados sobre la entrada existente.
// El id es inmutable. Si la entrada no existe, no hace nada.
func (r *PortfolioRepository) UpdateEntry(userID, entryID string, update models.PortfolioEntryUpdate) error {
	existing, err := r.GetEntry(userID, entryID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	if update.CoinID != nil {
		existing.CoinID = *update.CoinID
	}
	if update.Amount != nil {
		existing.Amount = *update.Amount
	}
	if update.PurchasePrice != nil {
		existing.PurchasePrice = *update.PurchasePrice
	}
	if update.PurchaseDate != nil {
		existing.PurchaseDate = *update.PurchaseDate
	}

	query := `
		UPDATE portfolio_entries
		SET coin_id = ?, amount = ?, purchase_price = ?, purchase_date = ?
		WHERE id = ? AND user_id = ?`

	_, err = r.db.Exec(query, existing.CoinID, existing.Amount, existing.PurchasePrice, existing.PurchaseDate, entryID, userID)
	return err
}

// DeleteEntry elimina la entrada. Si no existe, no hace nada.
func (r *PortfolioRepository) DeleteEntry(userID, entryID string) error {
	query := `DELETE FROM portfolio_entries WHERE id = ? AND user_id = ?`

	_, err := r.db.Exec(query, entryID, userID)
	return err
}
