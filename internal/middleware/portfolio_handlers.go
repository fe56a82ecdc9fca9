package middleware

import (
	"net/http"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/database"
	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
	"github.com/CryptoXApp/CryptoX_Api.git/internal/repository"
	"github.com/gin-gonic/gin"
)

var (
	portfolioRepo *repository.PortfolioRepository
	alertRepo     *repository.AlertRepository
	watchlistRepo *repository.WatchlistRepository
)

func InitCollections() {
	portfolioRepo = repository.NewPortfolioRepository(database.DB)
	alertRepo = repository.NewAlertRepository(database.DB)
	watchlistRepo = repository.NewWatchlistRepository(database.DB)
}

// AlertRepo expone el repositorio de alertas para el verificador periódico.
func AlertRepo() *repository.AlertRepository {
	return alertRepo
}

func CreatePortfolioEntry(c *gin.Context) {
	var entry models.PortfolioEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Obtener el ID del usuario del contexto (establecido por AuthMiddleware)
	entry.UserID = c.GetString("userId")
	entry.ID = "" // El id siempre lo asigna el repositorio

	if err := portfolioRepo.CreateEntry(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la entrada"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Entrada creada exitosamente",
		"entry":   entry,
	})
}

func GetPortfolio(c *gin.Context) {
	userID := c.GetString("userId")

	entries, err := portfolioRepo.GetUserEntries(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el portafolio"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetPortfolioSummary valúa el portafolio completo contra los precios
// actuales en la moneda pedida. Varias entradas de la misma moneda se suman.
func GetPortfolioSummary(c *gin.Context) {
	userID := c.GetString("userId")

	currency, ok := resolveCurrency(c)
	if !ok {
		return
	}

	entries, err := portfolioRepo.GetUserEntries(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el portafolio"})
		return
	}

	// Un portafolio vacío no necesita precios
	if len(entries) == 0 {
		c.JSON(http.StatusOK, models.BuildPortfolioSummary(entries, nil, currency))
		return
	}

	seen := make(map[string]bool)
	var coinIDs []string
	for _, entry := range entries {
		if !seen[entry.CoinID] {
			seen[entry.CoinID] = true
			coinIDs = append(coinIDs, entry.CoinID)
		}
	}

	prices, err := marketClient.GetSimplePrices(coinIDs, currency)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BuildPortfolioSummary(entries, prices, currency))
}

func UpdatePortfolioEntry(c *gin.Context) {
	userID := c.GetString("userId")
	entryID := c.Param("id")

	// Verificar que la entrada pertenezca al usuario
	entry, err := portfolioRepo.GetEntry(userID, entryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la entrada"})
		return
	}
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entrada no encontrada"})
		return
	}

	var update models.PortfolioEntryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := portfolioRepo.UpdateEntry(userID, entryID, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la entrada"})
		return
	}

	updated, err := portfolioRepo.GetEntry(userID, entryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la entrada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entrada actualizada exitosamente", "entry": updated})
}

func DeletePortfolioEntry(c *gin.Context) {
	userID := c.GetString("userId")
	entryID := c.Param("id")

	if err := portfolioRepo.DeleteEntry(userID, entryID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la entrada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Entrada eliminada exitosamente"})
}
