package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
)

// AlertRepository maneja las alertas de precio del usuario.
type AlertRepository struct {
	db *sql.DB
}

func NewAlertRepository(db *sql.DB) *AlertRepository {
	return &AlertRepository{
		db: db,
	}
}

// CreateAlert inserta una alerta nueva. Siempre nace con triggered=false.
func (r *AlertRepository) CreateAlert(alert *models.PriceAlert) error {
	if alert.ID == "" {
		alert.ID = fmt.Sprintf("%d", time.Now().UnixNano())
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}
	alert.Triggered = false

	query := `
		INSERT INTO price_alerts (id, user_id, coin_id, target_price, condition, triggered, created_at)
		VALUES (?, ?, ?, ?, ?, 0, ?)`

	_, err := r.db.Exec(query, alert.ID, alert.UserID, alert.CoinID, alert.TargetPrice, alert.Condition, alert.CreatedAt)
	return err
}

func (r *AlertRepository) GetUserAlerts(userID string) ([]models.PriceAlert, error) {
	query := `
		SELECT id, user_id, coin_id, target_price, condition, triggered, created_at
		FROM price_alerts
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC`

	return r.queryAlerts(query, userID)
}

// GetPendingAlerts devuelve todas las alertas sin disparar, de todos los
// usuarios, con la moneda de visualización de cada dueño para evaluar el
// precio objetivo en la misma moneda en que fue ingresado. La usa el
// verificador periódico.
func (r *AlertRepository) GetPendingAlerts() ([]models.PriceAlert, error) {
	query := `
		SELECT a.id, a.user_id, a.coin_id, a.target_price, a.condition, a.triggered, a.created_at,
			COALESCE(NULLIF(u.vs_currency, ''), 'usd')
		FROM price_alerts a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.triggered = 0`

	alerts := []models.PriceAlert{}

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var alert models.PriceAlert
		var triggered int
		err := rows.Scan(
			&alert.ID,
			&alert.UserID,
			&alert.CoinID,
			&alert.TargetPrice,
			&alert.Condition,
			&triggered,
			&alert.CreatedAt,
			&alert.VsCurrency,
		)
		if err != nil {
			return nil, err
		}
		alert.Triggered = triggered == 1
		alerts = append(alerts, alert)
	}

	return alerts, rows.Err()
}

func (r *AlertRepository) queryAlerts(query string, args ...interface{}) ([]models.PriceAlert, error) {
	alerts := []models.PriceAlert{}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var alert models.PriceAlert
		var triggered int
		err := rows.Scan(
			&alert.ID,
			&alert.UserID,
			&alert.CoinID,
			&alert.TargetPrice,
			&alert.Condition,
			&triggered,
			&alert.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		alert.Triggered = triggered == 1
		alerts = append(alerts, alert)
	}

	return alerts, rows.Err()
}

func (r *AlertRepository) GetAlert(userID, alertID string) (*models.PriceAlert, error) {
	alert := &models.PriceAlert{}
	var triggered int
	query := `
		SELECT id, user_id, coin_id, target_price, condition, triggered, created_at
		FROM price_alerts
		WHERE id = ? AND user_id = ?`

	err := r.db.QueryRow(query, alertID, userID).Scan(
		&alert.ID,
		&alert.UserID,
		&alert.CoinID,
		&alert.TargetPrice,
		&alert.Condition,
		&triggered,
		&alert.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	alert.Triggered = triggered == 1

	return alert, err
}

// UpdateAlert fusiona los campos enviados sobre la alerta existente.
// No toca triggered: una alerta disparada solo se limpia eliminándola.
func (r *AlertRepository) UpdateAlert(userID, alertID string, update models.PriceAlertUpdate) error {
	existing, err := r.GetAlert(userID, alertID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	if update.TargetPrice != nil {
		existing.TargetPrice = *update.TargetPrice
	}
	if update.Condition != nil {
		existing.Condition = *update.Condition
	}

	query := `
		UPDATE price_alerts
		SET target_price = ?, condition = ?
		WHERE id = ? AND user_id = ?`

	_, err = r.db.Exec(query, existing.TargetPrice, existing.Condition, alertID, userID)
	return err
}

// MarkTriggered deja la alerta en triggered=1. La transición es de una sola
// dirección.
func (r *AlertRepository) MarkTriggered(alertID string) error {
	query := `UPDATE price_alerts SET triggered = 1 WHERE id = ?`

	_, err := r.db.Exec(query, alertID)
	return err
}

// DeleteAlert elimina la alerta. Si no existe, no hace nada.
func (r *AlertRepository) DeleteAlert(userID, alertID string) error {
	query := `DELETE FROM price_alerts WHERE id = ? AND user_id = ?`

	_, err := r.db.Exec(query, alertID, userID)
	return err
}
