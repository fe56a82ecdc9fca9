package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
)

const (
	newsBaseURL = "https://min-api.cryptocompare.com/data/v2/news/?lang=EN"
	newsTTL     = 10 * time.Minute
)

// NewsClient obtiene noticias de criptomonedas desde CryptoCompare.
type NewsClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *ResponseCache
}

func NewNewsClient() *NewsClient {
	return &NewsClient{
		baseURL:    newsBaseURL,
		apiKey:     os.Getenv("NEWS_API_KEY"),
		httpClient: &http.Client{Timeout: requestTimeout},
		cache:      NewResponseCache(newsTTL),
	}
}

// GetNews devuelve las últimas noticias. El resultado se cachea 10 minutos.
func (c *NewsClient) GetNews() ([]models.NewsArticle, error) {
	key := CacheKey("/data/v2/news", "", nil)
	body, ok := c.cache.Get(key)
	if !ok {
		requestURL := c.baseURL
		if c.apiKey != "" {
			requestURL = fmt.Sprintf("%s&api_key=%s", c.baseURL, c.apiKey)
		}

		resp, err := c.httpClient.Get(requestURL)
		if err != nil {
			log.Printf("Error haciendo la petición HTTP de noticias: %v", err)
			return nil, fmt.Errorf("error obteniendo noticias: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, ErrRateLimited
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("error obteniendo noticias: status %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error leyendo respuesta de noticias: %w", err)
		}

		c.cache.Set(key, body)
	}

	var result models.NewsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		log.Printf("Error decodificando JSON de noticias: %v", err)
		return nil, fmt.Errorf("error decodificando noticias: %w", err)
	}

	return result.Data, nil
}
