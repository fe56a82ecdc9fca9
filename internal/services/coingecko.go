package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
)

const (
	coinGeckoBaseURL = "https://api.coingecko.com/api/v3"
	marketDataTTL    = 5 * time.Minute
	requestTimeout   = 10 * time.Second
	maxAttempts      = 3
	retryBaseDelay   = 2 * time.Second
)

// Errores distinguibles para la capa de presentación
var (
	// ErrRateLimited indica que CoinGecko devolvió 429
	ErrRateLimited = errors.New("límite de peticiones de la API alcanzado")
	// ErrNotFound indica que la moneda solicitada no existe
	ErrNotFound = errors.New("no se encontraron datos")
)

// CoinGeckoClient es el cliente de la API de CoinGecko con caché por ttl
// y reintentos acotados para las listas de mercado.
type CoinGeckoClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *ResponseCache
	retryDelay time.Duration
}

func NewCoinGeckoClient() *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL:    coinGeckoBaseURL,
		apiKey:     os.Getenv("COINGECKO_API_KEY"),
		httpClient: &http.Client{Timeout: requestTimeout},
		cache:      NewResponseCache(marketDataTTL),
		retryDelay: retryBaseDelay,
	}
}

// get resuelve una petición contra el caché o la red. Si withRetry es true
// reintenta hasta maxAttempts veces con retraso lineal creciente; un 429 o
// un 404 no se reintentan porque esperar no los cambia.
func (c *CoinGeckoClient) get(endpoint, currency string, params map[string]string, withRetry bool) ([]byte, error) {
	key := CacheKey(endpoint, currency, params)
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	// Construir la URL de la API
	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	if currency != "" {
		query.Set("vs_currency", currency)
	}
	if c.apiKey != "" {
		query.Set("x_cg_demo_api_key", c.apiKey)
	}
	requestURL := fmt.Sprintf("%s%s?%s", c.baseURL, endpoint, query.Encode())

	attempts := 1
	if withRetry {
		attempts = maxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			// Retraso lineal creciente entre reintentos
			time.Sleep(c.retryDelay * time.Duration(attempt-1))
			log.Printf("Reintentando %s (%d/%d)", endpoint, attempt, attempts)
		}

		body, err := c.doRequest(requestURL, endpoint)
		if err == nil {
			c.cache.Set(key, body)
			return body, nil
		}
		if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrNotFound) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

func (c *CoinGeckoClient) doRequest(requestURL, endpoint string) ([]byte, error) {
	resp, err := c.httpClient.Get(requestURL)
	if err != nil {
		log.Printf("Error haciendo la petición HTTP para %s: %v", endpoint, err)
		return nil, fmt.Errorf("error obteniendo %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("error obteniendo %s: status %d", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error leyendo respuesta de %s: %w", endpoint, err)
	}

	return body, nil
}

// GetCoinsMarkets obtiene la lista de monedas ordenada por capitalización.
// ids es opcional: una lista separada por comas restringe el resultado.
func (c *CoinGeckoClient) GetCoinsMarkets(currency string, page, perPage int, ids string) ([]models.MarketCoin, error) {
	params := map[string]string{
		"order":                   "market_cap_desc",
		"page":                    strconv.Itoa(page),
		"per_page":                strconv.Itoa(perPage),
		"sparkline":               "false",
		"price_change_percentage": "24h",
	}
	if ids != "" {
		params["ids"] = ids
	}

	body, err := c.get("/coins/markets", currency, params, true)
	if err != nil {
		return nil, err
	}

	coins, err := models.UnmarshalMarketCoins(body)
	if err != nil {
		log.Printf("Error decodificando JSON de /coins/markets: %v", err)
		return nil, fmt.Errorf("error decodificando respuesta de /coins/markets: %w", err)
	}

	return coins, nil
}

// GetCoinDetail obtiene el detalle de una moneda. La respuesta trae
// market_data indexado por moneda, así que no depende de vs_currency.
func (c *CoinGeckoClient) GetCoinDetail(coinID string) (*models.CoinDetail, error) {
	endpoint := fmt.Sprintf("/coins/%s", coinID)
	params := map[string]string{
		"localization":   "false",
		"tickers":        "false",
		"market_data":    "true",
		"community_data": "false",
		"developer_data": "false",
		"sparkline":      "false",
	}

	body, err := c.get(endpoint, "", params, false)
	if err != nil {
		return nil, err
	}

	var detail models.CoinDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		log.Printf("Error decodificando JSON para %s: %v", coinID, err)
		return nil, fmt.Errorf("error decodificando respuesta de %s: %w", endpoint, err)
	}

	return &detail, nil
}

// GetMarketChart obtiene el historial de precios de una moneda.
func (c *CoinGeckoClient) GetMarketChart(coinID, currency string, days int) (*models.MarketChart, error) {
	endpoint := fmt.Sprintf("/coins/%s/market_chart", coinID)
	params := map[string]string{
		"days": strconv.Itoa(days),
	}

	body, err := c.get(endpoint, currency, params, false)
	if err != nil {
		return nil, err
	}

	var chart models.MarketChart
	if err := json.Unmarshal(body, &chart); err != nil {
		log.Printf("Error decodificando JSON para %s: %v", coinID, err)
		return nil, fmt.Errorf("error decodificando respuesta de %s: %w", endpoint, err)
	}

	return &chart, nil
}

// Search busca monedas por nombre o símbolo.
func (c *CoinGeckoClient) Search(query string) (*models.SearchResult, error) {
	params := map[string]string{
		"query": query,
	}

	body, err := c.get("/search", "", params, false)
	if err != nil {
		return nil, err
	}

	var result models.SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		log.Printf("Error decodificando JSON de /search: %v", err)
		return nil, fmt.Errorf("error decodificando respuesta de /search: %w", err)
	}

	return &result, nil
}

// GetSimplePrices obtiene los precios actuales de múltiples monedas en una
// sola llamada a la API.
func (c *CoinGeckoClient) GetSimplePrices(ids []string, currency string) (map[string]float64, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("no se proporcionaron monedas")
	}

	coins, err := c.GetCoinsMarkets(currency, 1, len(ids), strings.Join(ids, ","))
	if err != nil {
		return nil, err
	}

	prices := make(map[string]float64)
	for _, coin := range coins {
		prices[coin.ID] = coin.CurrentPrice
	}

	if len(prices) == 0 {
		return nil, fmt.Errorf("no se encontraron precios para las monedas solicitadas")
	}

	return prices, nil
}
