package middleware

import (
	"net/http"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
	"github.com/gin-gonic/gin"
)

// AddToWatchlist agrega un snapshot de moneda a la watchlist. Agregar una
// moneda que ya está es un no-op exitoso (semántica de conjunto).
func AddToWatchlist(c *gin.Context) {
	userID := c.GetString("userId")

	var coin models.MarketCoin
	if err := c.ShouldBindJSON(&coin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if coin.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El id de la moneda es obligatorio"})
		return
	}

	exists, err := watchlistRepo.HasCoin(userID, coin.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al consultar la watchlist"})
		return
	}

	if !exists {
		if err := watchlistRepo.AddCoin(userID, coin); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al agregar a la watchlist"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Moneda en la watchlist", "coinId": coin.ID})
}

func GetWatchlist(c *gin.Context) {
	userID := c.GetString("userId")

	items, err := watchlistRepo.GetUserWatchlist(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la watchlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"watchlist": items})
}

func RemoveFromWatchlist(c *gin.Context) {
	userID := c.GetString("userId")
	coinID := c.Param("coinId")

	if err := watchlistRepo.RemoveCoin(userID, coinID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al quitar de la watchlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Moneda quitada de la watchlist"})
}
