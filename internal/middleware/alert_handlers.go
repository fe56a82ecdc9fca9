package middleware

import (
	"log"
	"net/http"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
	"github.com/gin-gonic/gin"
)

func CreateAlert(c *gin.Context) {
	var alert models.PriceAlert
	if err := c.ShouldBindJSON(&alert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert.UserID = c.GetString("userId")
	alert.ID = ""

	if err := alertRepo.CreateAlert(&alert); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la alerta"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Alerta creada exitosamente",
		"alert":   alert,
	})
}

// GetAlerts devuelve las alertas del usuario reevaluándolas contra los
// precios actuales. Las que cruzan su umbral quedan marcadas; una alerta ya
// disparada no se resetea aunque el precio haya vuelto atrás.
func GetAlerts(c *gin.Context) {
	userID := c.GetString("userId")

	alerts, err := alertRepo.GetUserAlerts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las alertas"})
		return
	}

	// Reevaluar las pendientes contra el mercado
	var coinIDs []string
	seen := make(map[string]bool)
	for _, alert := range alerts {
		if !alert.Triggered && !seen[alert.CoinID] {
			seen[alert.CoinID] = true
			coinIDs = append(coinIDs, alert.CoinID)
		}
	}

	if len(coinIDs) > 0 {
		// Reevaluar en la moneda de visualización del usuario: el precio
		// objetivo fue ingresado en esa moneda
		currency := models.DefaultCurrency
		if user, err := userRepo.GetUserById(userID); err == nil && models.IsValidCurrency(user.VsCurrency) {
			currency = user.VsCurrency
		}

		prices, err := marketClient.GetSimplePrices(coinIDs, currency)
		if err != nil {
			// Sin precios devolvemos el estado persistido; el verificador
			// periódico volverá a intentar
			log.Printf("No se pudieron reevaluar las alertas: %v", err)
		} else {
			for i := range alerts {
				if alerts[i].Triggered {
					continue
				}
				price, exists := prices[alerts[i].CoinID]
				if exists && alerts[i].ShouldTrigger(price) {
					if err := alertRepo.MarkTriggered(alerts[i].ID); err != nil {
						log.Printf("Error marcando alerta %s: %v", alerts[i].ID, err)
						continue
					}
					alerts[i].Triggered = true
				}
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func UpdateAlert(c *gin.Context) {
	userID := c.GetString("userId")
	alertID := c.Param("id")

	// Verificar que la alerta pertenezca al usuario
	alert, err := alertRepo.GetAlert(userID, alertID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la alerta"})
		return
	}
	if alert == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alerta no encontrada"})
		return
	}

	var update models.PriceAlertUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if update.Condition != nil &&
		*update.Condition != models.AlertConditionAbove &&
		*update.Condition != models.AlertConditionBelow {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Condición inválida"})
		return
	}

	if err := alertRepo.UpdateAlert(userID, alertID, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la alerta"})
		return
	}

	updated, err := alertRepo.GetAlert(userID, alertID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la alerta"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alerta actualizada exitosamente", "alert": updated})
}

func DeleteAlert(c *gin.Context) {
	userID := c.GetString("userId")
	alertID := c.Param("id")

	if err := alertRepo.DeleteAlert(userID, alertID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la alerta"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alerta eliminada exitosamente"})
}
