package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
	"github.com/CryptoXApp/CryptoX_Api.git/internal/services"
	"github.com/gin-gonic/gin"
)

var (
	marketClient *services.CoinGeckoClient
	newsClient   *services.NewsClient
)

func InitMarket() {
	marketClient = services.NewCoinGeckoClient()
	newsClient = services.NewNewsClient()
}

// MarketClient expone el cliente compartido para otros componentes
// (el verificador de alertas lo usa como fuente de precios).
func MarketClient() *services.CoinGeckoClient {
	return marketClient
}

// resolveCurrency valida el parámetro vs_currency. Ausente => usd.
// Una moneda fuera del conjunto soportado corta con 400.
func resolveCurrency(c *gin.Context) (string, bool) {
	currency := c.DefaultQuery("vs_currency", models.DefaultCurrency)
	if !models.IsValidCurrency(currency) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Moneda no soportada: " + currency})
		return "", false
	}
	return currency, true
}

// respondFetchError traduce los errores del cliente de mercado a respuestas
// HTTP: 429 distinguible para rate limit, 404 para moneda inexistente y 503
// genérico para el resto. Ningún error se propaga sin capturar.
func respondFetchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Límite de peticiones alcanzado. Intenta de nuevo en unos minutos."})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "No se encontraron datos"})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	}
}

// GetCoins devuelve la lista de monedas ordenada por capitalización de mercado.
func GetCoins(c *gin.Context) {
	currency, ok := resolveCurrency(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", "100"))
	if err != nil || perPage < 1 || perPage > 250 {
		perPage = 100
	}

	coins, err := marketClient.GetCoinsMarkets(currency, page, perPage, c.Query("ids"))
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, coins)
}

// GetCoinDetail devuelve el detalle de una moneda con su market_data
// indexado por moneda de visualización.
func GetCoinDetail(c *gin.Context) {
	coinID := c.Param("id")

	detail, err := marketClient.GetCoinDetail(coinID)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GetCoinChart devuelve el historial de precios para el gráfico.
func GetCoinChart(c *gin.Context) {
	currency, ok := resolveCurrency(c)
	if !ok {
		return
	}

	coinID := c.Param("id")
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		days = 7
	}

	chart, err := marketClient.GetMarketChart(coinID, currency, days)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, chart)
}

// SearchCoins busca monedas por nombre o símbolo.
func SearchCoins(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "El parámetro query es obligatorio"})
		return
	}

	result, err := marketClient.Search(query)
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetNews devuelve las últimas noticias de criptomonedas.
func GetNews(c *gin.Context) {
	news, err := newsClient.GetNews()
	if err != nil {
		respondFetchError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// GetCurrencies devuelve las monedas de visualización soportadas con su símbolo.
func GetCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default":    models.DefaultCurrency,
		"currencies": models.CurrencySymbols,
	})
}
