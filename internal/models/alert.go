package models

import "time"

// Condiciones posibles de una alerta de precio
const (
	AlertConditionAbove = "above"
	AlertConditionBelow = "below"
)

// PriceAlert representa una alerta de precio creada por el usuario.
// Una vez que triggered pasa a true no se resetea automáticamente;
// solo la eliminación explícita la limpia.
type PriceAlert struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CoinID      string    `json:"coinId" binding:"required"`
	TargetPrice float64   `json:"targetPrice" binding:"required,gt=0"`
	Condition   string    `json:"condition" binding:"required,oneof=above below"`
	Triggered   bool      `json:"triggered"`
	CreatedAt   time.Time `json:"createdAt"`

	// Moneda de visualización del dueño al momento de evaluar; la llena
	// el repositorio al cargar pendientes, no el cliente.
	VsCurrency string `json:"vs_currency,omitempty"`
}

// PriceAlertUpdate contiene los campos modificables de una alerta.
// El campo triggered no es modificable vía update.
type PriceAlertUpdate struct {
	TargetPrice *float64 `json:"targetPrice"`
	Condition   *string  `json:"condition"`
}

// ShouldTrigger indica si el precio actual cruza el umbral de la alerta.
func (a PriceAlert) ShouldTrigger(currentPrice float64) bool {
	switch a.Condition {
	case AlertConditionAbove:
		return currentPrice >= a.TargetPrice
	case AlertConditionBelow:
		return currentPrice <= a.TargetPrice
	}
	return false
}
